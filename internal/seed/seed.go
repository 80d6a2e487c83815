// Package seed bootstraps accounts, projects and assignments from a YAML file.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/project"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/user"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/repository"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type File struct {
	Users    []UserSeed    `yaml:"users"`
	Projects []ProjectSeed `yaml:"projects"`
}

type UserSeed struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type ProjectSeed struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	StartDate   string   `yaml:"start_date"`
	EndDate     string   `yaml:"end_date"`
	Status      string   `yaml:"status"`
	Owner       string   `yaml:"owner"`
	Members     []string `yaml:"members"`
}

// Load reads and validates a seed file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return Parse(data)
}

func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, f.Validate()
}

// Validate checks roles and that every project owner and member is declared.
func (f File) Validate() error {
	declared := make(map[string]user.Role, len(f.Users))
	for i, u := range f.Users {
		if u.Username == "" || u.Email == "" || u.Password == "" {
			return fmt.Errorf("users[%d]: username, email and password are required", i)
		}
		role := roleOf(u)
		if !role.Valid() {
			return fmt.Errorf("users[%d]: invalid role %q", i, u.Role)
		}
		declared[u.Username] = role
	}
	for i, p := range f.Projects {
		role, ok := declared[p.Owner]
		if !ok {
			return fmt.Errorf("projects[%d]: owner %q is not declared", i, p.Owner)
		}
		if role != user.RoleAdmin {
			return fmt.Errorf("projects[%d]: owner %q must be an admin", i, p.Owner)
		}
		for _, m := range p.Members {
			if _, ok := declared[m]; !ok {
				return fmt.Errorf("projects[%d]: member %q is not declared", i, m)
			}
		}
	}
	return nil
}

func roleOf(u UserSeed) user.Role {
	if u.Role == "" {
		return user.RoleUser
	}
	return user.Role(u.Role)
}

type Result struct {
	UsersCreated    int
	ProjectsCreated int
	Assignments     int
}

// Apply registers missing users, promotes admins directly on the record and
// creates projects through the project service. Users (matched by email) and
// projects (matched by title and owner) that already exist are reused, so a
// file can be applied more than once.
func Apply(ctx context.Context, svc *application.Services, repos *repository.Repos, f File) (Result, error) {
	var res Result
	byName := make(map[string]*user.User, len(f.Users))

	for _, us := range f.Users {
		u, created, err := ensureUser(ctx, svc, repos, us)
		if err != nil {
			return res, fmt.Errorf("seed user %s: %w", us.Username, err)
		}
		if created {
			res.UsersCreated++
		}
		byName[us.Username] = u
	}

	for _, ps := range f.Projects {
		owner := byName[ps.Owner]
		projectID, created, err := ensureProject(ctx, svc, repos, owner, ps)
		if err != nil {
			return res, fmt.Errorf("seed project %s: %w", ps.Title, err)
		}
		if created {
			res.ProjectsCreated++
		}

		for _, m := range ps.Members {
			err := svc.Project.AssignUser(ctx, owner, projectID, byName[m].ID)
			if errors.Is(err, application.ErrAlreadyAssigned) {
				continue
			}
			if err != nil {
				return res, fmt.Errorf("assign %s to %s: %w", m, ps.Title, err)
			}
			res.Assignments++
		}
	}

	log.Printf("Seed applied: %d users, %d projects, %d assignments", res.UsersCreated, res.ProjectsCreated, res.Assignments)
	return res, nil
}

func ensureUser(ctx context.Context, svc *application.Services, repos *repository.Repos, us UserSeed) (*user.User, bool, error) {
	created := false
	u, err := repos.WithContext(ctx).User.GetUserByEmail(us.Email)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		registered, err := svc.Auth.Register(ctx, user.RegisterInput{
			Username: us.Username,
			Email:    us.Email,
			Password: us.Password,
		})
		if err != nil {
			return nil, false, err
		}
		u, created = *registered, true
	default:
		return nil, false, err
	}

	if role := roleOf(us); role != u.Role {
		u.Role = role
		if err := repos.WithContext(ctx).User.SaveUser(&u); err != nil {
			return nil, false, err
		}
	}
	return &u, created, nil
}

func ensureProject(ctx context.Context, svc *application.Services, repos *repository.Repos, owner *user.User, ps ProjectSeed) (uint, bool, error) {
	existing, err := repos.WithContext(ctx).Project.GetProjectByTitleAndOwner(strings.TrimSpace(ps.Title), owner.ID)
	if err == nil {
		return existing.ID, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, err
	}

	input := project.CreateProjectDTO{
		Title:     ps.Title,
		StartDate: ps.StartDate,
		EndDate:   ps.EndDate,
	}
	if ps.Description != "" {
		input.Description = &ps.Description
	}
	if ps.Status != "" {
		input.Status = &ps.Status
	}
	p, err := svc.Project.CreateProject(ctx, owner, input)
	if err != nil {
		return 0, false, err
	}
	return p.ID, true, nil
}
