package couchbase

import (
	"fmt"
	"time"

	"github.com/couchbase/gocb/v2"
	"github.com/rs/zerolog"
)

// Connection wraps the gocb cluster and bucket the note store runs on.
type Connection struct {
	cluster    *gocb.Cluster
	bucket     *gocb.Bucket
	bucketName string
}

// Connect opens a Couchbase connection and waits for the bucket's key-value
// and query services to become ready.
func Connect(url, username, password, bucketName string, logger zerolog.Logger) (*Connection, error) {
	logger.Info().
		Str("url", url).
		Str("bucket", bucketName).
		Msg("connecting to couchbase")

	cluster, err := gocb.Connect(url, gocb.ClusterOptions{
		Authenticator: gocb.PasswordAuthenticator{Username: username, Password: password},
	})
	if err != nil {
		return nil, fmt.Errorf("connect cluster: %w", err)
	}

	bucket := cluster.Bucket(bucketName)
	err = bucket.WaitUntilReady(30*time.Second, &gocb.WaitUntilReadyOptions{
		ServiceTypes: []gocb.ServiceType{gocb.ServiceTypeKeyValue, gocb.ServiceTypeQuery},
	})
	if err != nil {
		return nil, fmt.Errorf("bucket not ready: %w", err)
	}

	return &Connection{
		cluster:    cluster,
		bucket:     bucket,
		bucketName: bucketName,
	}, nil
}

func (c *Connection) Close() error {
	if c.cluster != nil {
		return c.cluster.Close(nil)
	}
	return nil
}

func (c *Connection) Cluster() *gocb.Cluster {
	return c.cluster
}

func (c *Connection) Bucket() *gocb.Bucket {
	return c.bucket
}

func (c *Connection) BucketName() string {
	return c.bucketName
}
