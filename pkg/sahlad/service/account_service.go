package service

import (
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles registration, login and account lifecycle for all
// four roles.
type AccountService struct {
	stors *stor.Stors
}

func NewAccountService(stors *stor.Stors) *AccountService {
	return &AccountService{stors: stors}
}

type RegisterUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterFreelancerRequest struct {
	RegisterUserRequest
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city"`
	Wilaya      string `json:"wilaya"`
	Skills      string `json:"skills"`
	Categories  string `json:"categories"`
	NationalID  string `json:"national_id"`
}

type RegisterClientRequest struct {
	RegisterUserRequest
	PhoneNumber string `json:"phone_number"`
	City        string `json:"city"`
	Wilaya      string `json:"wilaya"`
}

type RegisterCompanyRequest struct {
	RegisterUserRequest
	RegistrationNumber string `json:"registration_number"`
	TaxID              string `json:"tax_id"`
	Representative     string `json:"representative"`
	BusinessType       string `json:"business_type"`
	Industry           string `json:"industry"`
}

func (r *RegisterUserRequest) validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.Wrap(ErrValidation, "email is required")
	}

	if len(r.Password) < 8 {
		return errors.Wrap(ErrValidation, "password must be at least 8 characters")
	}

	if strings.TrimSpace(r.FirstName) == "" {
		return errors.Wrap(ErrValidation, "first name is required")
	}

	return nil
}

func (s *AccountService) RegisterFreelancer(req RegisterFreelancerRequest) (*smodel.Freelancer, error) {
	user, err := s.createUser(req.RegisterUserRequest, smodel.RoleFreelancer)
	if err != nil {
		return nil, err
	}

	return s.stors.FreelancerStor.CreateFreelancer(&smodel.Freelancer{
		UserID:      user.ID,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Wilaya:      req.Wilaya,
		Skills:      req.Skills,
		Categories:  req.Categories,
		NationalID:  req.NationalID,
	})
}

func (s *AccountService) RegisterClient(req RegisterClientRequest) (*smodel.Client, error) {
	user, err := s.createUser(req.RegisterUserRequest, smodel.RoleClient)
	if err != nil {
		return nil, err
	}

	return s.stors.ClientStor.CreateClient(&smodel.Client{
		UserID:      user.ID,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Wilaya:      req.Wilaya,
	})
}

func (s *AccountService) RegisterCompany(req RegisterCompanyRequest) (*smodel.Company, error) {
	if strings.TrimSpace(req.RegistrationNumber) == "" {
		return nil, errors.Wrap(ErrValidation, "registration number is required")
	}

	user, err := s.createUser(req.RegisterUserRequest, smodel.RoleCompany)
	if err != nil {
		return nil, err
	}

	return s.stors.CompanyStor.CreateCompany(&smodel.Company{
		UserID:             user.ID,
		RegistrationNumber: req.RegistrationNumber,
		TaxID:              req.TaxID,
		Representative:     req.Representative,
		BusinessType:       req.BusinessType,
		Industry:           req.Industry,
	})
}

func (s *AccountService) createUser(req RegisterUserRequest, role string) (*smodel.User, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.stors.UserStor.GetUserByEmail(email); err == nil {
		return nil, errors.Wrap(ErrConflict, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.stors.UserStor.CreateUser(&smodel.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     email,
		Password:  string(hashed),
		Role:      role,
	})
	if err != nil {
		return nil, translateStorErr(err)
	}

	log.Infof("registered %s account %s", role, user.Email)
	return user, nil
}

// Login checks the credentials and returns the user. Wrong email and wrong
// password produce the same error so login probing can't tell them apart.
func (s *AccountService) Login(email, password string) (*smodel.User, error) {
	user, err := s.stors.UserStor.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, errors.Wrap(ErrValidation, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.Wrap(ErrValidation, "invalid credentials")
	}

	if !user.IsActive {
		return nil, errors.Wrap(ErrForbidden, "account deactivated")
	}

	return user, nil
}

func (s *AccountService) UpdatePassword(user *smodel.User, currentPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(currentPassword)); err != nil {
		return errors.Wrap(ErrValidation, "current password is incorrect")
	}

	if len(newPassword) < 8 {
		return errors.Wrap(ErrValidation, "password must be at least 8 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return translateStorErr(s.stors.UserStor.UpdateUserPassword(user.ID, string(hashed)))
}

// Deactivate soft-deletes an account. Users can deactivate themselves, staff
// can deactivate anyone.
func (s *AccountService) Deactivate(actor *smodel.User, userID int) error {
	if actor.ID != userID && !actor.IsStaff {
		return ErrForbidden
	}

	return translateStorErr(s.stors.UserStor.DeactivateUser(userID))
}
