package note

import (
	"context"
	"fmt"

	"github.com/couchbase/gocb/v2"
	"github.com/google/uuid"

	"github.com/abernathyclinic/clinic-api/internal/platform/couchbase"
)

const notesCollection = "notes"

type repoCouchbase struct {
	conn *couchbase.Connection
}

func NewRepoCouchbase(conn *couchbase.Connection) Repository {
	return &repoCouchbase{conn: conn}
}

func (r *repoCouchbase) collection() *gocb.Collection {
	return r.conn.Bucket().Scope("_default").Collection(notesCollection)
}

func (r *repoCouchbase) Save(ctx context.Context, n *Note) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	_, err := r.collection().Insert(n.ID, n, &gocb.InsertOptions{Context: ctx})
	if err != nil {
		return &StorageError{Op: "insert", Err: err}
	}
	return nil
}

func (r *repoCouchbase) FindByPatientID(ctx context.Context, patID int) ([]*Note, error) {
	query := fmt.Sprintf(
		"SELECT META(n).id AS id, n.patId, n.e FROM `%s`.`_default`.`%s` AS n WHERE n.patId = $1 ORDER BY META(n).id",
		r.conn.BucketName(), notesCollection)

	rows, err := r.conn.Cluster().Query(query, &gocb.QueryOptions{
		Context:              ctx,
		PositionalParameters: []interface{}{patID},
	})
	if err != nil {
		return nil, &StorageError{Op: "query by patient id", Err: err}
	}
	defer rows.Close()

	var notes []*Note
	for rows.Next() {
		var n Note
		if err := rows.Row(&n); err != nil {
			return nil, &StorageError{Op: "decode note", Err: err}
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "iterate notes", Err: err}
	}

	return notes, nil
}
