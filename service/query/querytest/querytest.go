// Package querytest connects repository tests to a disposable mongo database.
package querytest

import (
	"os"
	"testing"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/database/mongoclient"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/service/query"
)

const dbName = "launchpad_test"

// Connect skips t unless MONGO_URI points to a replica set, then recreates tables empty
func Connect(t *testing.T, tables ...domain.Table) (query.Mongo, *mongoclient.Client) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	client := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:        uri,
		AuthDBName: "admin",
		DBName:     dbName,
		SetSafe:    true,
	})

	c := ctx.Background()
	db := client.Database(dbName)
	for _, table := range tables {
		if err := db.Collection(string(table)).Drop(c); err != nil {
			t.Fatal(err)
		}
		if err := db.CreateCollection(c, string(table)); err != nil {
			t.Fatal(err)
		}
	}
	return query.New(client, false), client
}
