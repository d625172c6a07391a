package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"mptransport/models"
)

type UserService struct {
	Deps
}

func hashPassword(pw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.MobileNumber = strings.TrimSpace(req.MobileNumber)
	if req.Status == "" {
		req.Status = models.UserActive
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	u := &models.User{
		Name:         req.Name,
		Password:     hashed,
		Type:         req.Type,
		MobileNumber: req.MobileNumber,
		Status:       req.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Repos().Users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.audit(ctx, EntityUser, strconv.FormatInt(u.ID, 10), models.ActionCreate)
	return u, nil
}

func (s *UserService) Search(ctx context.Context, name string) ([]*models.User, error) {
	return s.Store.Repos().Users.SearchByName(ctx, strings.TrimSpace(name))
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.Store.Repos().Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.Store.Repos().Users.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, notFound("user", strconv.FormatInt(id, 10))
	}
	return u, nil
}

// Update changes only the fields present in req. A new password is
// hashed before it is stored.
func (s *UserService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Name == nil && req.Password == nil && req.Type == nil && req.MobileNumber == nil && req.Status == nil {
		return nil, invalid("", "no fields to update")
	}
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Password != nil {
		if u.Password, err = hashPassword(*req.Password); err != nil {
			return nil, err
		}
	}
	if req.Type != nil {
		u.Type = *req.Type
	}
	if req.MobileNumber != nil {
		u.MobileNumber = strings.TrimSpace(*req.MobileNumber)
	}
	if req.Status != nil {
		u.Status = *req.Status
	}
	u.UpdatedAt = s.now()

	found, err := s.Store.Repos().Users.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, notFound("user", strconv.FormatInt(id, 10))
	}
	s.audit(ctx, EntityUser, strconv.FormatInt(id, 10), models.ActionUpdate)
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (bool, error) {
	found, err := s.Store.Repos().Users.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if found {
		s.audit(ctx, EntityUser, strconv.FormatInt(id, 10), models.ActionDelete)
	}
	return found, nil
}

// EnsureAdmin creates an active admin account unless a user with that
// name exists.
func (s *UserService) EnsureAdmin(ctx context.Context, name, password, mobile string) error {
	existing, err := s.Store.Repos().Users.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	u, err := s.Create(ctx, models.CreateUserRequest{
		Name:         name,
		Password:     password,
		Type:         "Admin",
		MobileNumber: mobile,
		Status:       models.UserActive,
	})
	if err != nil {
		return err
	}
	s.Logger.WithFields(logrus.Fields{"module": EntityUser, "id": u.ID}).Info("default admin created")
	return nil
}
