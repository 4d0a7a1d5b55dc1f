package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"taskman/internal/query"
	"taskman/internal/task"
)

// Mongo is the MongoDB-backed TaskStore.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo connects to the given URI and pings the server before
// returning a store bound to database/collection.
func OpenMongo(ctx context.Context, uri, database, collection string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", uri, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", uri, err)
	}

	return &Mongo{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Insert stores a new task and fills in the generated object ID.
func (m *Mongo) Insert(ctx context.Context, t *task.Task) error {
	res, err := m.coll.InsertOne(ctx, t)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid
	}
	return nil
}

// Get returns the task with the given hex ID.
func (m *Mongo) Get(ctx context.Context, id string) (*task.Task, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var t task.Task
	err = m.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find task %s: %w", id, err)
	}
	return &t, nil
}

// Find returns tasks matching the query. The filter and any expressible
// sort run server-side; rank and due-date orderings are applied after
// decoding.
func (m *Mongo) Find(ctx context.Context, q *query.Query) ([]task.Task, error) {
	opts := options.Find()
	if sortDoc := q.SortDoc(); sortDoc != nil {
		opts.SetSort(sortDoc)
		if q.SortField == "title" {
			// Case-insensitive title ordering.
			opts.SetCollation(&options.Collation{Locale: "en", Strength: 2})
		}
	}

	cur, err := m.coll.Find(ctx, q.Filter(), opts)
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cur.Close(ctx)

	var tasks []task.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	q.SortTasks(tasks)
	return tasks, nil
}

// Update applies a partial patch via $set.
func (m *Mongo) Update(ctx context.Context, id string, u task.Updates) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	set := updateDoc(u)
	if len(set) == 0 {
		return nil
	}

	res, err := m.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update task %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the task with the given hex ID.
func (m *Mongo) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping verifies the server is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// updateDoc translates an Updates patch into a $set document.
func updateDoc(u task.Updates) bson.M {
	set := bson.M{}
	if u.Title != nil {
		set["title"] = *u.Title
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.DueDate != nil {
		set["due_date"] = *u.DueDate
	}
	if u.Priority != nil {
		set["priority"] = *u.Priority
	}
	if u.Status != nil {
		set["status"] = *u.Status
	}
	return set
}
