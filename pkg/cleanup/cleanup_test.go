package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/salatchecker/pkg/cleanup"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCleanUpRunsJobsInReverseOrder(t *testing.T) {
	var order []string
	cleanup.Register(&cleanup.Job{Name: "pool", F: func() error {
		order = append(order, "pool")
		return nil
	}})
	cleanup.Register(&cleanup.Job{Name: "cache", F: func() error {
		order = append(order, "cache")
		return errors.New("already closed")
	}})
	cleanup.CleanUp(zap.NewNop())
	assert.Equal(t, []string{"cache", "pool"}, order)

	// Jobs run only once.
	cleanup.CleanUp(zap.NewNop())
	assert.Len(t, order, 2)
}
