package services

import (
	"testing"

	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPaymentMethods_OwnerOrAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(repository.NewPaymentRepository(db))

	thanos := mkUser(t, db, "thanos", entity.RoleMember, "INDIA")
	thor := mkUser(t, db, "thor", entity.RoleMember, "INDIA")
	admin := mkUser(t, db, "fury", entity.RoleAdmin, entity.CountryAll)

	mkPaymentMethod(t, db, thanos, "UPI")
	mkPaymentMethod(t, db, thanos, "CASH")
	mkPaymentMethod(t, db, thor, "CREDIT_CARD")

	got, err := svc.List(thanos)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, pm := range got {
		assert.Equal(t, thanos.ID, pm.UserID)
	}

	got, err = svc.List(admin)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestUpdatePaymentMethod_AdminOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(repository.NewPaymentRepository(db))

	thanos := mkUser(t, db, "thanos", entity.RoleMember, "INDIA")
	manager := mkUser(t, db, "marvel", entity.RoleManager, "INDIA")
	admin := mkUser(t, db, "fury", entity.RoleAdmin, entity.CountryAll)

	pm := mkPaymentMethod(t, db, thanos, "UPI")

	// even the owner cannot mutate; only admin may
	_, err := svc.UpdateType(thanos, pm.ID, "CASH")
	require.ErrorIs(t, err, ErrForbidden)
	_, err = svc.UpdateType(manager, pm.ID, "CASH")
	require.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateType(admin, pm.ID, "CASH")
	require.NoError(t, err)
	assert.Equal(t, "CASH", updated.Type)
	assert.Equal(t, thanos.ID, updated.UserID)
}

func TestUpdatePaymentMethod_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewPaymentService(repository.NewPaymentRepository(db))

	admin := mkUser(t, db, "fury", entity.RoleAdmin, entity.CountryAll)
	thanos := mkUser(t, db, "thanos", entity.RoleMember, "INDIA")
	existing := mkPaymentMethod(t, db, thanos, "UPI")

	_, err := svc.UpdateType(admin, 9999, "CASH")
	require.ErrorIs(t, err, ErrNotFound)

	// and nothing else was touched
	kept, err := svc.Repo.FindByID(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "UPI", kept.Type)
}
