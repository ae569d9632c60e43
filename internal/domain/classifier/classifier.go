package classifier

import (
	"context"

	"github.com/phishguard/phishguard-api/internal/domain/entity"
)

// Classifier is the capability the scan pipeline depends on. The production
// implementation talks to the ML service over HTTP; tests substitute a stub.
type Classifier interface {
	Classify(ctx context.Context, text string, kind entity.InputType) (entity.Verdict, error)
}
