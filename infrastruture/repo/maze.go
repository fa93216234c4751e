package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	saveTimeout   = time.Second
	lookupTimeout = 2 * time.Second
)

// mazeDocument is the BSON shape of a saved maze.
type mazeDocument struct {
	ID        string    `bson:"_id"`
	Rows      int       `bson:"rows"`
	Columns   int       `bson:"columns"`
	Seed      int64     `bson:"seed"`
	Layout    []byte    `bson:"layout"`
	CreatedAt time.Time `bson:"createdAt"`
}

// MazeRepo handles the persistence of saved mazes.
type MazeRepo struct {
	collection *mongo.Collection
	encoder    i.LayoutEncoder
}

// NewMazeRepo creates a new MazeRepo with the given MongoDB client, database name, and collection name.
func NewMazeRepo(client *mongo.Client, dbName, collectionName string, encoder i.LayoutEncoder) *MazeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &MazeRepo{
		collection: collection,
		encoder:    encoder,
	}
}

// Save inserts or updates a maze record.
func (r *MazeRepo) Save(ctx context.Context, record *dmn.MazeRecord) error {
	ctx, cancel := context.WithTimeout(ctx, saveTimeout)
	defer cancel()

	layout, err := r.encoder.Marshal(record.Layout)
	if err != nil {
		return err
	}

	filter := bson.M{"_id": record.ID.String()}
	update := bson.M{
		"$set": bson.M{
			"rows":      record.Rows,
			"columns":   record.Columns,
			"seed":      record.Seed,
			"layout":    layout,
			"createdAt": record.CreatedAt,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a maze record by its ID.
// Returns dmn.ErrMazeNotFound if no record matches.
func (r *MazeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	var doc mazeDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrMazeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return r.toRecord(doc)
}

func (r *MazeRepo) toRecord(doc mazeDocument) (*dmn.MazeRecord, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, err
	}
	layout, err := r.encoder.Unmarshal(doc.Layout)
	if err != nil {
		return nil, err
	}
	return &dmn.MazeRecord{
		ID:        id,
		Rows:      doc.Rows,
		Columns:   doc.Columns,
		Seed:      doc.Seed,
		Layout:    layout,
		CreatedAt: doc.CreatedAt,
	}, nil
}
