package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go-clinic-records/internal/delivery/dto"
	"go-clinic-records/internal/domain/entity"
	"go-clinic-records/internal/domain/repository"
	"go-clinic-records/internal/service"
	"go-clinic-records/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrSpecialtyNotFound = errors.New("specialty not found")
	ErrSpecialtyExists   = errors.New("specialty already exists")
)

type SpecialtyUsecase interface {
	Add(ctx context.Context, req *dto.CreateSpecialtyRequest) (entity.Specialty, error)
	Remove(ctx context.Context, name string) error
	Find(name string) (entity.Specialty, bool)
	List() []entity.Specialty
}

type specialtyUsecase struct {
	mu           sync.RWMutex
	log          *logrus.Logger
	repo         repository.SpecialtyRepository
	validator    *validator.CustomValidator
	auditService service.AuditService
	specialties  []entity.Specialty
}

func NewSpecialtyUsecase(
	ctx context.Context,
	log *logrus.Logger,
	repo repository.SpecialtyRepository,
	validator *validator.CustomValidator,
	auditService service.AuditService,
) SpecialtyUsecase {
	return &specialtyUsecase{
		log:          log,
		repo:         repo,
		validator:    validator,
		auditService: auditService,
		specialties:  loadOrEmpty(ctx, log, "specialties", repo.FindAll),
	}
}

// Add registers a specialty. Names are matched exactly.
func (u *specialtyUsecase) Add(ctx context.Context, req *dto.CreateSpecialtyRequest) (entity.Specialty, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if err := validate(u.validator, req); err != nil {
		return entity.Specialty{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.indexOf(req.Name) >= 0 {
		return entity.Specialty{}, fmt.Errorf("%w: %s", ErrSpecialtyExists, req.Name)
	}

	specialty := entity.Specialty{Name: req.Name, Description: req.Description}
	next := append(slices.Clone(u.specialties), specialty)
	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Warnf("Failed to save specialty %s: %+v", specialty.Name, err)
		return entity.Specialty{}, persistErr(err)
	}
	u.specialties = next

	u.log.Infof("Specialty %s added", specialty.Name)
	_ = u.auditService.LogCreate(ctx, entity.AuditActionSpecialtyCreate, "specialty", specialty.Name, specialty)

	return specialty, nil
}

func (u *specialtyUsecase) Remove(ctx context.Context, name string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSpecialtyNotFound, name)
	}

	removed := u.specialties[idx]
	next := slices.Delete(slices.Clone(u.specialties), idx, idx+1)
	if err := u.repo.SaveAll(ctx, next); err != nil {
		u.log.Warnf("Failed to save specialties after removing %s: %+v", name, err)
		return persistErr(err)
	}
	u.specialties = next

	u.log.Infof("Specialty %s removed", name)
	_ = u.auditService.LogDelete(ctx, entity.AuditActionSpecialtyDelete, "specialty", name, removed)

	return nil
}

func (u *specialtyUsecase) Find(name string) (entity.Specialty, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if idx := u.indexOf(name); idx >= 0 {
		return u.specialties[idx], true
	}
	return entity.Specialty{}, false
}

func (u *specialtyUsecase) List() []entity.Specialty {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return slices.Clone(u.specialties)
}

func (u *specialtyUsecase) indexOf(name string) int {
	return slices.IndexFunc(u.specialties, func(s entity.Specialty) bool { return s.Name == name })
}
