//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benx421/easydinar/internal/api"
	"github.com/benx421/easydinar/internal/eligibility"
)

func TestHealth(t *testing.T) {
	ts := SetupTest(t)

	resp := ts.Do(t, http.MethodGet, "/health", "", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, api.HealthStatusHealthy, decode[api.Health](t, resp).Status)
}

func TestRegisterLoginDepositWithdraw(t *testing.T) {
	ts := SetupTest(t)

	user := ts.RegisterUser(t, "01234567", "22123456", "amal@example.tn")
	assert.Equal(t, "user", string(user.Role))
	assert.NotEmpty(t, user.ClientIdentifier)

	token := ts.Login(t, user.ClientIdentifier, testPassword)
	account := ts.OpenAccount(t, token, user.Cin, 100.5)
	assert.Equal(t, "100.500", account.Balance)
	assert.Equal(t, user.Cin, account.OwnerCin)

	resp := ts.Do(t, http.MethodPost, "/api/v1/deposits", token, map[string]any{
		"account_number": account.AccountNumber,
		"amount":         50,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deposit := decode[api.MutationResponse](t, resp)
	assert.Equal(t, "150.500", deposit.Account.Balance)
	assert.Equal(t, "deposit", string(deposit.Transaction.Type))

	resp = ts.Do(t, http.MethodPost, "/api/v1/withdrawals", token, map[string]any{
		"account_number": account.AccountNumber,
		"amount":         20.25,
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "130.250", decode[api.MutationResponse](t, resp).Account.Balance)

	resp = ts.Do(t, http.MethodPost, "/api/v1/withdrawals", token, map[string]any{
		"account_number": account.AccountNumber,
		"amount":         1000,
	}, nil)
	require.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "insufficient_funds", decode[api.Error](t, resp).Error)

	resp = ts.Do(t, http.MethodGet, "/api/v1/accounts/"+account.AccountNumber, token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "130.250", decode[api.Account](t, resp).Balance)

	resp = ts.Do(t, http.MethodGet, "/api/v1/transactions?account_number="+account.AccountNumber, token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	txns := decode[[]api.Transaction](t, resp)
	require.Len(t, txns, 2)
	assert.Equal(t, "withdraw", string(txns[0].Type))
	assert.Equal(t, "20.250", txns[0].Amount)
	assert.Equal(t, "deposit", string(txns[1].Type))
}

func TestIdempotentDepositReplay(t *testing.T) {
	ts := SetupTest(t)

	user := ts.RegisterUser(t, "01234567", "22123456", "amal@example.tn")
	token := ts.Login(t, user.ClientIdentifier, testPassword)
	account := ts.OpenAccount(t, token, user.Cin, 0)

	body := map[string]any{"account_number": account.AccountNumber, "amount": 10}
	headers := map[string]string{"Idempotency-Key": "deposit-key-1"}

	first := ts.Do(t, http.MethodPost, "/api/v1/deposits", token, body, headers)
	require.Equal(t, http.StatusOK, first.StatusCode)
	firstBody := decode[api.MutationResponse](t, first)

	second := ts.Do(t, http.MethodPost, "/api/v1/deposits", token, body, headers)
	require.Equal(t, http.StatusOK, second.StatusCode)
	secondBody := decode[api.MutationResponse](t, second)

	assert.Equal(t, firstBody.Transaction.Id, secondBody.Transaction.Id)
	assert.Equal(t, "10.000", secondBody.Account.Balance)

	resp := ts.Do(t, http.MethodGet, "/api/v1/accounts/"+account.AccountNumber, token, nil, nil)
	assert.Equal(t, "10.000", decode[api.Account](t, resp).Balance)
}

func TestConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	ts := SetupTest(t)

	user := ts.RegisterUser(t, "01234567", "22123456", "amal@example.tn")
	token := ts.Login(t, user.ClientIdentifier, testPassword)
	account := ts.OpenAccount(t, token, user.Cin, 100)

	const attempts = 10
	var wg sync.WaitGroup
	statuses := make(chan int, attempts)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp := ts.Do(t, http.MethodPost, "/api/v1/withdrawals", token, map[string]any{
				"account_number": account.AccountNumber,
				"amount":         20,
			}, nil)
			resp.Body.Close()
			statuses <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(statuses)

	counts := map[int]int{}
	for status := range statuses {
		counts[status]++
	}
	assert.Equal(t, 5, counts[http.StatusOK])
	assert.Equal(t, 5, counts[http.StatusPaymentRequired])

	resp := ts.Do(t, http.MethodGet, "/api/v1/accounts/"+account.AccountNumber, token, nil, nil)
	assert.Equal(t, "0.000", decode[api.Account](t, resp).Balance)
}

func TestOwnershipAndAdminAccess(t *testing.T) {
	ts := SetupTest(t)

	amal := ts.RegisterUser(t, "01234567", "22123456", "amal@example.tn")
	sami := ts.RegisterUser(t, "11234567", "23123456", "sami@example.tn")
	amalToken := ts.Login(t, amal.ClientIdentifier, testPassword)
	samiToken := ts.Login(t, sami.ClientIdentifier, testPassword)
	adminToken := ts.Login(t, adminClientID, testPassword)

	account := ts.OpenAccount(t, amalToken, amal.Cin, 10)

	t.Run("user cannot open an account for someone else", func(t *testing.T) {
		resp := ts.Do(t, http.MethodPost, "/api/v1/accounts", samiToken, map[string]any{
			"cin":             amal.Cin,
			"kind":            "savings",
			"initial_balance": 0,
		}, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("user cannot read someone else's account", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/v1/accounts/"+account.AccountNumber, samiToken, nil, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("user cannot deposit into someone else's account", func(t *testing.T) {
		resp := ts.Do(t, http.MethodPost, "/api/v1/deposits", samiToken, map[string]any{
			"account_number": account.AccountNumber,
			"amount":         5,
		}, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("user cannot change the account kind", func(t *testing.T) {
		resp := ts.Do(t, http.MethodPatch, "/api/v1/accounts/"+account.AccountNumber, amalToken,
			map[string]any{"kind": "savings"}, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin can open an account for any user", func(t *testing.T) {
		opened := ts.OpenAccount(t, adminToken, sami.Cin, 25)
		assert.Equal(t, sami.Cin, opened.OwnerCin)
	})

	t.Run("admin can change the account kind", func(t *testing.T) {
		resp := ts.Do(t, http.MethodPatch, "/api/v1/accounts/"+account.AccountNumber, adminToken,
			map[string]any{"kind": "savings"}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "savings", string(decode[api.Account](t, resp).Kind))
	})

	t.Run("admin lists every user", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/v1/users", adminToken, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, decode[[]api.User](t, resp), 3)
	})

	t.Run("user only finds themselves", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/v1/users", amalToken, nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		users := decode[[]api.User](t, resp)
		require.Len(t, users, 1)
		assert.Equal(t, amal.Cin, users[0].Cin)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := SetupTest(t)

	for _, path := range []string{"/api/v1/accounts", "/api/v1/transactions", "/api/v1/users", "/api/v1/2fa"} {
		t.Run(path, func(t *testing.T) {
			resp := ts.Do(t, http.MethodGet, path, "", nil, nil)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			resp = ts.Do(t, http.MethodGet, path, "not-a-token", nil, nil)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	ts := SetupTest(t)

	user := ts.RegisterUser(t, "01234567", "22123456", "amal@example.tn")
	token := ts.Login(t, user.ClientIdentifier, testPassword)
	ts.OpenAccount(t, token, user.Cin, 1)

	resp := ts.Do(t, http.MethodPost, "/api/v1/auth/logout", token, nil, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.Do(t, http.MethodGet, "/api/v1/accounts", token, nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "token_revoked", decode[api.Error](t, resp).Error)

	fresh := ts.Login(t, user.ClientIdentifier, testPassword)
	resp = ts.Do(t, http.MethodGet, "/api/v1/accounts", fresh, nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWrongPasswordIsRejected(t *testing.T) {
	ts := SetupTest(t)

	user := ts.RegisterUser(t, "01234567", "22123456", "amal@example.tn")

	resp := ts.Do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"client_identifier": user.ClientIdentifier,
		"password":          "Wr0ng!pass",
	}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPasswordRecovery(t *testing.T) {
	ts := SetupTest(t)

	user := ts.RegisterUser(t, "01234567", "22123456", "amal@example.tn")

	resp := ts.Do(t, http.MethodPost, "/api/v1/auth/password-recovery", "",
		map[string]any{"email": user.Email}, nil)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	msg := ts.Mail.last(t)
	assert.Equal(t, user.Email, msg.To)
	link, err := url.Parse(msg.Link)
	require.NoError(t, err)
	resetToken := link.Query().Get("token")
	require.NotEmpty(t, resetToken)

	t.Run("reset token is not a session", func(t *testing.T) {
		resp := ts.Do(t, http.MethodGet, "/api/v1/accounts", resetToken, nil, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	const newPassword = "N3w!password"
	resp = ts.Do(t, http.MethodPost, "/api/v1/auth/password-reset", "", map[string]any{
		"token":        resetToken,
		"new_password": newPassword,
	}, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	ts.Login(t, user.ClientIdentifier, newPassword)

	resp = ts.Do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"client_identifier": user.ClientIdentifier,
		"password":          testPassword,
	}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestChangePassword(t *testing.T) {
	ts := SetupTest(t)

	user := ts.RegisterUser(t, "01234567", "22123456", "amal@example.tn")
	token := ts.Login(t, user.ClientIdentifier, testPassword)

	resp := ts.Do(t, http.MethodPost, "/api/v1/auth/password", token, map[string]any{
		"old_password": "Wr0ng!pass",
		"new_password": "N3w!password",
	}, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ts.Do(t, http.MethodPost, "/api/v1/auth/password", token, map[string]any{
		"old_password": testPassword,
		"new_password": "N3w!password",
	}, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	ts.Login(t, user.ClientIdentifier, "N3w!password")
}

func TestTwoFactorEnrollment(t *testing.T) {
	ts := SetupTest(t)

	user := ts.RegisterUser(t, "01234567", "22123456", "amal@example.tn")
	token := ts.Login(t, user.ClientIdentifier, testPassword)

	resp := ts.Do(t, http.MethodGet, "/api/v1/2fa", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "off", string(decode[api.TwoFactorStatus](t, resp).State))

	resp = ts.Do(t, http.MethodPost, "/api/v1/2fa/confirm", token, map[string]any{"code": validOTPCode}, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "two_factor_not_pending", decode[api.Error](t, resp).Error)

	resp = ts.Do(t, http.MethodPost, "/api/v1/2fa/start", token, map[string]any{"phone_number": "+21622123456"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	started := decode[api.TwoFactorStatus](t, resp)
	assert.Equal(t, "pending", string(started.State))
	require.NotNil(t, started.PhoneNumber)
	assert.Equal(t, "+21622123456", *started.PhoneNumber)

	resp = ts.Do(t, http.MethodPost, "/api/v1/2fa/confirm", token, map[string]any{"code": "000000"}, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ts.Do(t, http.MethodPost, "/api/v1/2fa/confirm", token, map[string]any{"code": validOTPCode}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "on", string(decode[api.TwoFactorStatus](t, resp).State))

	resp = ts.Do(t, http.MethodPost, "/api/v1/2fa/start", token, map[string]any{"phone_number": "+21622123456"}, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "two_factor_already_enabled", decode[api.Error](t, resp).Error)
}

func TestLoanEligibility(t *testing.T) {
	ts := SetupTest(t)

	resp := ts.Do(t, http.MethodPost, "/api/v1/loan-eligibility", "", map[string]any{
		"income":            5000,
		"debt":              500,
		"savings":           20000,
		"employment_status": "employed",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[eligibility.Result](t, resp)
	assert.Equal(t, eligibility.TierLargeLoans, result.Tier)
	assert.NotEmpty(t, result.Links)

	resp = ts.Do(t, http.MethodPost, "/api/v1/loan-eligibility", "", map[string]any{
		"income":            0,
		"debt":              -1,
		"savings":           0,
		"employment_status": "employed",
	}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExchangeRate(t *testing.T) {
	ts := SetupTest(t)

	resp := ts.Do(t, http.MethodGet, "/api/v1/exchange-rate?base_currency=tnd&target_currency=eur", "", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rate := decode[api.ExchangeRate](t, resp)
	assert.Equal(t, "TND", rate.BaseCurrency)
	assert.Equal(t, "EUR", rate.TargetCurrency)
	assert.Equal(t, "0.295", rate.Rate)

	resp = ts.Do(t, http.MethodGet, "/api/v1/exchange-rate?base_currency=TND&target_currency=JPY", "", nil, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unsupported_currency", decode[api.Error](t, resp).Error)

	resp = ts.Do(t, http.MethodGet, "/api/v1/exchange-rate?base_currency=TND&target_currency=TND", "", nil, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[api.Error](t, resp)
	require.NotNil(t, body.Violations)
	assert.Equal(t, "target_currency", (*body.Violations)[0].Field)
}

func TestBranchesAndAtms(t *testing.T) {
	ts := SetupTest(t)

	resp := ts.Do(t, http.MethodGet, "/api/v1/branches-atms", "", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	all := decode[[]api.Location](t, resp)
	require.Len(t, all, 2)
	assert.Equal(t, "Agence Lac 2", all[0].Name)
	assert.Equal(t, "Rue du Lac Huron, Tunis", all[0].Address)

	resp = ts.Do(t, http.MethodGet, "/api/v1/branches-atms?type=atm", "", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	atms := decode[[]api.Location](t, resp)
	require.Len(t, atms, 1)
	assert.Equal(t, api.LocationTypeAtm, atms[0].Type)
	assert.Equal(t, "Unknown Street, Carthage", atms[0].Address)
}
