package classroom

// Course mirrors the Google Classroom course resource, trimmed to the
// fields the frontend consumes.
type Course struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	EnrollmentCode string `json:"enrollmentCode,omitempty"`
	CourseState    string `json:"courseState,omitempty"`
	CreationTime   string `json:"creationTime,omitempty"`
}

// Student keeps the nested profile shape of the Classroom roster API so
// clients written against it keep working unchanged.
type Student struct {
	UserID  string         `json:"userId"`
	Profile StudentProfile `json:"profile"`
}

type StudentProfile struct {
	Name         StudentName `json:"name"`
	EmailAddress string      `json:"emailAddress"`
}

type StudentName struct {
	FullName string `json:"fullName"`
}

type CourseWork struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	State        string `json:"state"`
	CreationTime string `json:"creationTime,omitempty"`
}
