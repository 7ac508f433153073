package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/charhateom/qrakhsa/bootstrap"
	"github.com/charhateom/qrakhsa/model"
)

// testDB connects to the instance named by MONGO_TEST_URI and hands back a
// throwaway database. Tests are skipped when no instance is available.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database(fmt.Sprintf("qrakhsa_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() { _ = db.Drop(context.Background()) })

	require.NoError(t, bootstrap.EnsureIndexes(db))
	return db
}

func TestEmployeeDuplicateUsername(t *testing.T) {
	db := testDB(t)
	repo := NewEmployeeRepo(db)
	ctx := context.Background()

	first := &model.Employee{
		Username:          "alice",
		Name:              "Alice A",
		BloodType:         "O+",
		Department:        "Eng",
		EmergencyContacts: []model.EmergencyContact{{Name: "Bob", Relationship: "Spouse", Phone: "+1-555-0000"}},
		PasswordHash:      "x",
	}
	require.NoError(t, repo.Insert(ctx, first))
	require.False(t, first.ID.IsZero())

	dup := &model.Employee{Username: "alice", Name: "Imposter", BloodType: "A-", Department: "Ops", PasswordHash: "y"}
	require.ErrorIs(t, repo.Insert(ctx, dup), ErrDuplicateUsername)

	// The first record is unaffected by the failed insert.
	got, err := repo.FindByID(ctx, first.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, "Alice A", got.Name)
}

func TestEmployeeFindMissing(t *testing.T) {
	db := testDB(t)
	repo := NewEmployeeRepo(db)
	ctx := context.Background()

	_, err := repo.FindByID(ctx, "64a000000000000000000099")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(ctx, "not-a-hex-id")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAlertListNewestFirstAndResolve(t *testing.T) {
	db := testDB(t)
	repo := NewAlertRepo(db)
	ctx := context.Background()

	older := &model.SOSAlert{EmployeeID: "e1", EmployeeName: "Alice A", Timestamp: time.Now().UTC().Add(-time.Minute)}
	newer := &model.SOSAlert{EmployeeID: "e1", EmployeeName: "Alice A", Timestamp: time.Now().UTC()}
	require.NoError(t, repo.Insert(ctx, older))
	require.NoError(t, repo.Insert(ctx, newer))
	require.NotEqual(t, older.ID, newer.ID)

	alerts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	require.Equal(t, newer.ID, alerts[0].ID)

	require.NoError(t, repo.Delete(ctx, older.ID.Hex()))
	require.ErrorIs(t, repo.Delete(ctx, older.ID.Hex()), ErrNotFound)

	alerts, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, newer.ID, alerts[0].ID)
}
