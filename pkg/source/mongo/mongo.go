// Package mongo reads permit rows from a MongoDB collection.
//
// Each document carries the same two fields as a spreadsheet row:
//
//	{ "permit": "Gold", "lots": "Lot A, Lot B" }
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parkops/lotmap/pkg/permit"
	"github.com/parkops/lotmap/pkg/source"
)

// Source reads rows from a MongoDB collection. A fresh connection is made
// per Rows call; the tool reads the dataset once per run, so holding a
// pooled client open buys nothing.
type Source struct {
	uri        string
	database   string
	collection string
}

// New creates a MongoDB source. uri is a standard connection string
// (mongodb://...); database and collection name where the rows live.
func New(uri, database, collection string) *Source {
	return &Source{uri: uri, database: database, collection: collection}
}

// Name identifies the source for logs. The URI is omitted since it may
// embed credentials.
func (s *Source) Name() string {
	return fmt.Sprintf("mongo:%s.%s", s.database, s.collection)
}

type document struct {
	Permit string `bson:"permit"`
	Lots   string `bson:"lots"`
}

// Rows fetches every document in the collection, in natural order.
// Field contents are passed through raw.
func (s *Source) Rows(ctx context.Context) ([]permit.Row, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.uri))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	cur, err := client.Database(s.database).Collection(s.collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.Name(), err)
	}
	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Name(), err)
	}

	rows := make([]permit.Row, len(docs))
	for i, d := range docs {
		rows[i] = permit.Row{Permit: d.Permit, Lots: d.Lots}
	}
	return rows, nil
}

var _ source.Source = (*Source)(nil)
