package handlers

import (
	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/models"
)

// Conversions from stored models to response bodies. Credentials never
// leave the service.

func toUser(u *models.User) api.User {
	user := api.User{
		Id:               u.ID,
		ClientIdentifier: u.ClientIdentifier,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Cin:              u.CIN,
		PhoneNumber:      u.PhoneNumber,
		Email:            u.Email,
		Role:             api.Role(u.Role),
		TwoFactor:        api.TwoFactorState(u.TwoFactor),
		CreatedAt:        u.CreatedAt,
	}
	if u.Address != "" {
		address := u.Address
		user.Address = &address
	}
	return user
}

func toUsers(users []*models.User) []api.User {
	out := make([]api.User, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	return out
}

func toAccount(a *models.Account) api.Account {
	return api.Account{
		AccountNumber: a.AccountNumber,
		Kind:          api.AccountKind(a.Kind),
		Balance:       a.Balance.StringFixed(moneyScale),
		OwnerCin:      a.OwnerCIN,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toAccounts(accounts []*models.Account) []api.Account {
	out := make([]api.Account, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccount(a))
	}
	return out
}

func toTransaction(t *models.Transaction) api.Transaction {
	return api.Transaction{
		Id:            t.ID,
		AccountNumber: t.AccountNumber,
		Type:          api.TransactionType(t.Type),
		Amount:        t.Amount.StringFixed(moneyScale),
		CreatedAt:     t.CreatedAt,
	}
}

func toTransactions(txns []*models.Transaction) []api.Transaction {
	out := make([]api.Transaction, 0, len(txns))
	for _, t := range txns {
		out = append(out, toTransaction(t))
	}
	return out
}

func toLocations(locations []*models.Location) []api.Location {
	out := make([]api.Location, 0, len(locations))
	for _, l := range locations {
		out = append(out, api.Location{
			Id:        l.ID,
			Name:      l.Name,
			Type:      api.LocationType(l.Type),
			Address:   l.Address,
			Latitude:  l.Latitude,
			Longitude: l.Longitude,
		})
	}
	return out
}
