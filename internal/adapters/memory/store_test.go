package memory_test

import (
	"testing"

	"github.com/aretw0/ishikawa/internal/adapters/memory"
	"github.com/aretw0/ishikawa/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.NewStore())
}
