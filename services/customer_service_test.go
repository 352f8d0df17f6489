package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerSvc(f *testFixture) *CustomerService {
	return NewCustomerService(
		repository.NewCustomerRepository(f.DB),
		repository.NewTableRepository(f.DB),
	)
}

func TestCustomerLoginCreatesOnFirstVisit(t *testing.T) {
	f := newFixture(t)
	svc := newCustomerSvc(f)

	c, err := svc.LoginOrCreate(&CustomerLoginIn{
		OwnerID: f.Owner.ID, TableID: f.Table.ID,
		Name: "Minh", Phone: "0911111111",
	})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, f.Owner.ID, c.OwnerID)
	assert.True(t, c.IsActive)
}

func TestCustomerLoginReturnsExisting(t *testing.T) {
	f := newFixture(t)
	svc := newCustomerSvc(f)

	// Same phone as the seeded customer, new display name.
	c, err := svc.LoginOrCreate(&CustomerLoginIn{
		OwnerID: f.Owner.ID, TableID: f.Table.ID,
		Name: "Linh Tran", Phone: f.Customer.Phone,
	})
	require.NoError(t, err)
	assert.Equal(t, f.Customer.ID, c.ID)
	assert.Equal(t, "Linh Tran", c.Name)

	var count int64
	f.DB.Model(&entity.Customer{}).Where("owner_id = ?", f.Owner.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCustomerLoginPhoneScopedPerRestaurant(t *testing.T) {
	f := newFixture(t)
	svc := newCustomerSvc(f)

	otherOwner := createOwner(t, f, "other@example.com")
	var available entity.TableStatus
	require.NoError(t, f.DB.Where("status_name = ?", "Available").First(&available).Error)
	otherTable := entity.Table{TableNumber: 1, OwnerID: otherOwner, TableStatusID: available.ID}
	require.NoError(t, f.DB.Create(&otherTable).Error)

	// The same phone at another restaurant is a different customer row.
	c, err := svc.LoginOrCreate(&CustomerLoginIn{
		OwnerID: otherOwner, TableID: otherTable.ID,
		Name: "Linh", Phone: f.Customer.Phone,
	})
	require.NoError(t, err)
	assert.NotEqual(t, f.Customer.ID, c.ID)
	assert.Equal(t, otherOwner, c.OwnerID)
}

func TestCustomerLoginRejectsForeignTable(t *testing.T) {
	f := newFixture(t)
	svc := newCustomerSvc(f)

	otherOwner := createOwner(t, f, "other@example.com")
	_, err := svc.LoginOrCreate(&CustomerLoginIn{
		OwnerID: otherOwner, TableID: f.Table.ID,
		Name: "Minh", Phone: "0911111111",
	})
	assert.Error(t, err)
}

func TestCustomerLoginRequiresNameAndPhone(t *testing.T) {
	f := newFixture(t)
	svc := newCustomerSvc(f)

	_, err := svc.LoginOrCreate(&CustomerLoginIn{
		OwnerID: f.Owner.ID, TableID: f.Table.ID, Name: "  ", Phone: "0911111111",
	})
	assert.Error(t, err)

	_, err = svc.LoginOrCreate(&CustomerLoginIn{
		OwnerID: f.Owner.ID, TableID: f.Table.ID, Name: "Minh", Phone: "",
	})
	assert.Error(t, err)
}
