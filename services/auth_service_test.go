package services

import (
	"testing"
	"time"

	"backend/repository"
	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthSvc(f *testFixture) *AuthService {
	return NewAuthService(f.DB, repository.NewAccountRepository(f.DB), testSecret, time.Hour)
}

func TestRegisterOwnerAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := newAuthSvc(f)

	owner, err := svc.RegisterOwner(&RegisterOwnerIn{
		Email:          "New@Example.com",
		Password:       "secret1",
		RestaurantName: "Banh Mi Stop",
	})
	require.NoError(t, err)
	assert.NotZero(t, owner.ID)

	// Email is stored lowercased, so login with either casing works.
	out, err := svc.Login("new@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "owner", out.Role)
	assert.Equal(t, owner.ID, out.OwnerID)

	claims, err := utils.ParseToken(out.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, claims.OwnerID)
	assert.Equal(t, "owner", claims.Role)
}

func TestRegisterOwnerDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	svc := newAuthSvc(f)

	in := &RegisterOwnerIn{Email: "dup@example.com", Password: "secret1", RestaurantName: "A"}
	_, err := svc.RegisterOwner(in)
	require.NoError(t, err)

	_, err = svc.RegisterOwner(in)
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture(t)
	svc := newAuthSvc(f)

	_, err := svc.RegisterOwner(&RegisterOwnerIn{
		Email: "who@example.com", Password: "secret1", RestaurantName: "A",
	})
	require.NoError(t, err)

	_, err = svc.Login("who@example.com", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.Login("nobody@example.com", "secret1")
	assert.EqualError(t, err, "invalid credentials")
}

func TestStaffLifecycle(t *testing.T) {
	f := newFixture(t)
	svc := newAuthSvc(f)

	owner, err := svc.RegisterOwner(&RegisterOwnerIn{
		Email: "boss@example.com", Password: "secret1", RestaurantName: "A",
	})
	require.NoError(t, err)

	staff, err := svc.CreateStaff(owner.ID, &CreateStaffIn{
		Email: "waiter@example.com", Password: "secret1", Name: "Tu",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, staff.OwnerID)

	// Staff tokens carry the employer's owner id.
	out, err := svc.Login("waiter@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "staff", out.Role)
	assert.Equal(t, owner.ID, out.OwnerID)

	list, err := svc.ListStaff(owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.SetStaffActive(owner.ID, staff.ID, false))

	// Another owner cannot touch this staff row.
	err = svc.SetStaffActive(owner.ID+100, staff.ID, true)
	assert.ErrorIs(t, err, ErrForbidden)
}
