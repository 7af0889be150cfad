package interfaces

import (
	"context"

	"albaranes/internal/domain/entities"
)

// IPartyDirectory resolves the display attributes of the entities a note
// references. It replaces the document-store "populate" join of the
// upstream system with explicit lookups; results are read-only.
//
// A missing party is reported as a zero-value info struct, not an error,
// so a dangling reference surfaces as a render-time validation failure
// rather than a lookup crash.

type IPartyDirectory interface {
	GetUser(ctx context.Context, id string) (entities.UserInfo, error)
	GetClient(ctx context.Context, id string) (entities.ClientInfo, error)
	GetProject(ctx context.Context, id string) (entities.ProjectInfo, error)
}
