package memory

import (
	"context"
	"sort"

	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
)

var _ repository.ContactRepository = (*Store)(nil)

func (s *Store) CreateContact(_ context.Context, contact *model.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact.ID = s.nextContactID
	s.nextContactID++
	s.contacts[contact.ID] = *contact
	return nil
}

func (s *Store) ListContacts(_ context.Context) ([]model.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contacts := make([]model.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		contacts = append(contacts, c)
	}
	sort.Slice(contacts, func(i, j int) bool { return contacts[i].ID < contacts[j].ID })
	return contacts, nil
}
