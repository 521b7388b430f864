package usecase

import (
	"context"
	"strings"

	"go-clinic-records/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func newPerson(firstName, lastName, birthDate, phone string) entity.Person {
	return entity.Person{
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		BirthDate: strings.TrimSpace(birthDate),
		Phone:     strings.TrimSpace(phone),
	}
}

// storedPeople reads the persisted collection for the duplicate check and
// falls back to the in-memory copy when the file cannot be read.
func storedPeople[T any](ctx context.Context, log *logrus.Logger, load func(context.Context) ([]T, error), inMemory []T, person func(T) entity.Person) []entity.Person {
	items, err := load(ctx)
	if err != nil {
		log.Warnf("Failed to re-read records for duplicate check, using memory: %+v", err)
		items = inMemory
	}

	people := make([]entity.Person, len(items))
	for i, item := range items {
		people[i] = person(item)
	}
	return people
}
