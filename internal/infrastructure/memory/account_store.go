package memory

import (
	"github.com/jhoicas/mockshop-api/internal/domain/entity"
)

// AccountStore implementa repository.AccountRepository sobre las cuentas
// semilla. Las cuentas son inmutables, así que no necesita mutex.
type AccountStore struct {
	accounts []*entity.Account
}

// NewAccountStore construye el store con las cuentas de prueba.
func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: seedAccounts()}
}

// FindByUsername devuelve una copia de la cuenta o (nil, nil) si no existe.
func (s *AccountStore) FindByUsername(username string) (*entity.Account, error) {
	for _, a := range s.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todas las cuentas en orden semilla.
func (s *AccountStore) List() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}
