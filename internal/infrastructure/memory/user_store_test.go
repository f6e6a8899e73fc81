package memory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mockshop-api/internal/domain/entity"
	"github.com/jhoicas/mockshop-api/internal/infrastructure/memory"
)

func TestUserStore_SemillaInicial(t *testing.T) {
	s := memory.NewUserStore()

	users, err := s.List()
	require.NoError(t, err)
	assert.Len(t, users, 7)
	assert.Equal(t, 1, users[0].ID)
}

// El contador de IDs es monótono: un ID borrado nunca se reasigna.
func TestUserStore_IDsMonotonicos(t *testing.T) {
	s := memory.NewUserStore()

	u := &entity.User{Name: "Nuevo", Email: "nuevo@example.com", Status: entity.UserStatusActive}
	require.NoError(t, s.Create(u))
	assert.Equal(t, 8, u.ID)

	require.NoError(t, s.Delete(8))

	u2 := &entity.User{Name: "Otro", Email: "otro@example.com", Status: entity.UserStatusActive}
	require.NoError(t, s.Create(u2))
	assert.Equal(t, 9, u2.ID, "el 8 fue borrado pero no se reutiliza")
}

// Las copias devueltas no comparten memoria con el store: mutar el resultado
// de un Get no afecta el estado interno.
func TestUserStore_DevuelveCopias(t *testing.T) {
	s := memory.NewUserStore()

	u, err := s.GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, u)
	u.Name = "Mutado Por Fuera"

	again, err := s.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Alicia García", again.Name)
}

func TestUserStore_GetInexistente(t *testing.T) {
	s := memory.NewUserStore()

	u, err := s.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserStore_Reset(t *testing.T) {
	s := memory.NewUserStore()

	require.NoError(t, s.Create(&entity.User{Name: "Extra", Email: "extra@example.com"}))
	require.NoError(t, s.Delete(1))

	require.NoError(t, s.Reset())

	users, err := s.List()
	require.NoError(t, err)
	assert.Len(t, users, 7)

	u := &entity.User{Name: "Post Reset", Email: "post@example.com"}
	require.NoError(t, s.Create(u))
	assert.Equal(t, 8, u.ID, "el contador vuelve a la semilla tras el reset")
}

// Creaciones concurrentes no chocan en la asignación de IDs.
func TestUserStore_CreacionConcurrente(t *testing.T) {
	s := memory.NewUserStore()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u := &entity.User{Name: "Concurrente", Email: "c@example.com"}
			if err := s.Create(u); err == nil {
				ids <- u.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "ID duplicado bajo concurrencia: %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
