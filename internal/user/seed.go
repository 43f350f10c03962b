package user

import (
	"context"

	"github.com/prabhashaj/EdututorAI/internal/auth"
	"github.com/prabhashaj/EdututorAI/internal/config"
)

const (
	demoStudentPassword  = "student123"
	demoEducatorPassword = "educator123"
)

type demoUser struct {
	email string
	name  string
	role  Role
}

var demoRoster = []demoUser{
	{"student@edututor.ai", "Student User", RoleStudent},
	{"alice.johnson@edututor.ai", "Alice Johnson", RoleStudent},
	{"bob.smith@edututor.ai", "Bob Smith", RoleStudent},
	{"carol.williams@edututor.ai", "Carol Williams", RoleStudent},
	{"david.brown@edututor.ai", "David Brown", RoleStudent},
	{"emma.davis@edututor.ai", "Emma Davis", RoleStudent},
	{"frank.miller@edututor.ai", "Frank Miller", RoleStudent},
	{"grace.wilson@edututor.ai", "Grace Wilson", RoleStudent},
	{"henry.moore@edututor.ai", "Henry Moore", RoleStudent},
	{"ivy.taylor@edututor.ai", "Ivy Taylor", RoleStudent},
	{"jack.anderson@edututor.ai", "Jack Anderson", RoleStudent},
	{"kate.thomas@edututor.ai", "Kate Thomas", RoleStudent},
	{"luke.jackson@edututor.ai", "Luke Jackson", RoleStudent},
	{"maria.white@edututor.ai", "Maria White", RoleStudent},
	{"noah.harris@edututor.ai", "Noah Harris", RoleStudent},
	{"olivia.martin@edututor.ai", "Olivia Martin", RoleStudent},
	{"educator@edututor.ai", "Educator User", RoleEducator},
	{"student@demo.com", "Demo Student", RoleStudent},
	{"educator@demo.com", "Demo Educator", RoleEducator},
}

// SeedDemoUsers creates the predefined demo accounts when absent so the
// dashboard has data to show out of the box. Existing accounts are left
// untouched.
func (s *userService) SeedDemoUsers(ctx context.Context) error {
	log := config.WithContext(ctx)

	studentHash, err := auth.HashPassword(demoStudentPassword)
	if err != nil {
		return err
	}
	educatorHash, err := auth.HashPassword(demoEducatorPassword)
	if err != nil {
		return err
	}

	created := 0
	for _, d := range demoRoster {
		existing, err := s.repo.GetByEmail(d.email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hash := studentHash
		if d.role == RoleEducator {
			hash = educatorHash
		}

		u := &User{
			Email:          d.email,
			Name:           d.name,
			Role:           d.role,
			HashedPassword: hash,
			Courses:        []string{},
		}
		if err := s.repo.Create(u); err != nil {
			return err
		}
		s.upsertProfile(ctx, u)
		created++
	}

	log.Infof("Demo users seeded (%d created, %d total in roster)", created, len(demoRoster))
	return nil
}
