package interfaces

import (
	"context"
	"errors"
	"shootbook/internal/domain/entities"
)

var ErrSessionVersionConflict = errors.New("wizard session was modified concurrently")

// ISessionStore keeps wizard sessions between requests and notifies
// subscribers of every saved snapshot.
//
// Get returns a zero session and nil error when the id is unknown or expired.
// Save stores s only when the stored version still equals s.Version (0 for a
// new session) and returns the saved snapshot with the version incremented;
// otherwise ErrSessionVersionConflict.
type ISessionStore interface {
	Get(ctx context.Context, id string) (entities.WizardSession, error)
	Save(ctx context.Context, s entities.WizardSession) (entities.WizardSession, error)
	Delete(ctx context.Context, id string) error
	Subscribe(ctx context.Context, id string) (<-chan entities.WizardSession, func(), error)
}
