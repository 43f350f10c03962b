package classroom

import (
	"os"

	"golang.org/x/oauth2"
	gclassroom "google.golang.org/api/classroom/v1"

	"github.com/prabhashaj/EdututorAI/internal/user"
)

type ClassroomContainer struct {
	Provider Provider
	Service  ClassroomService
	Handler  *Handler
}

func NewClassroomContainer(userRepo user.UserRepository) *ClassroomContainer {
	var provider Provider
	switch os.Getenv("CLASSROOM_PROVIDER") {
	case "google":
		oauthConfig := &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes: []string{
				gclassroom.ClassroomCoursesReadonlyScope,
				gclassroom.ClassroomRostersReadonlyScope,
				gclassroom.ClassroomCourseworkStudentsReadonlyScope,
			},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.google.com/o/oauth2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
			},
		}
		provider = NewGoogleProvider(oauthConfig)
	default:
		provider = NewMockProvider()
	}

	service := NewService(provider, userRepo)
	handler := NewHandler(service)

	return &ClassroomContainer{
		Provider: provider,
		Service:  service,
		Handler:  handler,
	}
}
