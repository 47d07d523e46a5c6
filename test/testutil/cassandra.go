package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gocql/gocql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/cassandra"
)

const (
	defaultCassandraImage = "cassandra:4.1"
	defaultTestKeyspace   = "cqlstream_test"

	connectAttempts = 10
	connectBackoff  = 3 * time.Second
)

// CassandraContainer wraps a Cassandra test container together with an open
// session bound to the test keyspace.
type CassandraContainer struct {
	Container *cassandra.CassandraContainer
	Host      string
	Session   *gocql.Session
}

// CassandraOptions configures the Cassandra container.
type CassandraOptions struct {
	// Image is the Cassandra image to use. Defaults to "cassandra:4.1".
	Image string
	// Keyspace is the keyspace to create. Defaults to "cqlstream_test".
	Keyspace string
}

// StartCassandra starts a Cassandra container, creates the test keyspace and
// returns a session connected to it. The container and session are terminated
// when the test completes.
//
// Passing nil opts uses the defaults.
func StartCassandra(ctx context.Context, t *testing.T, opts *CassandraOptions) (*CassandraContainer, error) {
	t.Helper()

	if opts == nil {
		opts = &CassandraOptions{}
	}
	if opts.Image == "" {
		opts.Image = defaultCassandraImage
	}
	if opts.Keyspace == "" {
		opts.Keyspace = defaultTestKeyspace
	}

	container, err := cassandra.Run(ctx, opts.Image,
		testcontainers.WithEnv(map[string]string{
			"HEAP_NEWSIZE":     "128M",
			"MAX_HEAP_SIZE":    "512M",
			"CASSANDRA_SNITCH": "SimpleSnitch",
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start Cassandra container: %w", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate Cassandra container: %v", err)
		}
	})

	host, err := container.ConnectionHost(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get connection host: %w", err)
	}

	if err := createTestKeyspace(t, host, opts.Keyspace); err != nil {
		return nil, err
	}

	cluster := newTestCluster(host)
	cluster.Keyspace = opts.Keyspace
	session, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create session for keyspace %s: %w", opts.Keyspace, err)
	}

	t.Cleanup(func() {
		session.Close()
	})

	return &CassandraContainer{
		Container: container,
		Host:      host,
		Session:   session,
	}, nil
}

func newTestCluster(host string) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(host)
	cluster.Consistency = gocql.Quorum
	cluster.Timeout = 60 * time.Second
	cluster.ConnectTimeout = 60 * time.Second
	return cluster
}

// createTestKeyspace connects to the system keyspace, retrying while the node
// finishes bootstrapping, and creates the test keyspace.
func createTestKeyspace(t *testing.T, host, keyspace string) error {
	t.Helper()

	cluster := newTestCluster(host)
	cluster.Keyspace = "system"

	var (
		session *gocql.Session
		err     error
	)
	for i := 0; i < connectAttempts; i++ {
		session, err = cluster.CreateSession()
		if err == nil {
			break
		}
		t.Logf("waiting for Cassandra to be ready (attempt %d/%d): %v", i+1, connectAttempts, err)
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return fmt.Errorf("failed to create session after retries: %w", err)
	}
	defer session.Close()

	stmt := fmt.Sprintf(`
		CREATE KEYSPACE IF NOT EXISTS %s
		WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}
	`, keyspace)
	if err := session.Query(stmt).Exec(); err != nil {
		return fmt.Errorf("failed to create keyspace: %w", err)
	}

	return nil
}
