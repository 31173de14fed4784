package store_test

import (
	"context"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/sync/errgroup"

	"github.com/fhirfactory/hestia-task/internal/codec"
	"github.com/fhirfactory/hestia-task/internal/models"
	"github.com/fhirfactory/hestia-task/internal/store"
	srvErrors "github.com/fhirfactory/hestia-task/pkg/errors"
	"github.com/fhirfactory/hestia-task/pkg/widecol"
)

// gatedConnector holds every connection request until released or until the
// request context ends.
type gatedConnector struct {
	inner   store.Connector
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedConnector(inner store.Connector) *gatedConnector {
	return &gatedConnector{inner: inner, entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedConnector) Connection(ctx context.Context) (*widecol.Connection, error) {
	g.once.Do(func() { close(g.entered) })
	select {
	case <-g.release:
		return g.inner.Connection(ctx)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var _ = Describe("TaskStore", func() {
	var (
		ctx   context.Context
		s     *store.Store
		tasks *store.TaskStore
		enc   codec.JSON
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = store.NewStore(memoryConfig())
		tasks = s.Tasks()
		DeferCleanup(s.Close)
	})

	write := func(task *models.Task) {
		put, err := store.Index(task, enc)
		Expect(err).NotTo(HaveOccurred())
		Expect(tasks.Put(ctx, put)).To(Succeed())
	}

	Context("CreateTableIfAbsent", func() {
		// Given many callers racing to provision the table
		// When they all create it at once
		// Then none of them fails and the table has the two families
		It("should tolerate concurrent creators", func() {
			// Arrange
			var g errgroup.Group

			// Act
			for range 16 {
				g.Go(func() error {
					return tasks.CreateTableIfAbsent(ctx)
				})
			}

			// Assert
			Expect(g.Wait()).To(Succeed())

			conn, err := s.Connections().Connection(ctx)
			Expect(err).NotTo(HaveOccurred())
			desc, err := conn.Admin().DescribeTable(ctx, tasks.Table())
			Expect(err).NotTo(HaveOccurred())
			Expect(desc.Families).To(ConsistOf(store.FamilyInfo, store.FamilyData))
		})

		// Given a creation started by a caller that is then canceled
		// When another caller waits on the same creation
		// Then only the canceled caller fails and the table is created
		It("should not fail waiting callers when the first one is canceled", func() {
			gate := newGatedConnector(s.Connections())
			shared := store.NewTaskStore(gate, "SHARED")

			first, cancel := context.WithCancel(ctx)
			firstErr := make(chan error, 1)
			go func() { firstErr <- shared.CreateTableIfAbsent(first) }()
			Eventually(gate.entered).Should(BeClosed())

			secondErr := make(chan error, 1)
			go func() { secondErr <- shared.CreateTableIfAbsent(ctx) }()

			cancel()
			Eventually(firstErr).Should(Receive(MatchError(context.Canceled)))

			close(gate.release)
			Eventually(secondErr).Should(Receive(BeNil()))

			conn, err := s.Connections().Connection(ctx)
			Expect(err).NotTo(HaveOccurred())
			exists, err := conn.Admin().TableExists(ctx, "SHARED")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		// Given a table created by another store on the same connection
		// When this store provisions the table
		// Then the existing table is accepted
		It("should accept a table created elsewhere", func() {
			Expect(tasks.CreateTableIfAbsent(ctx)).To(Succeed())

			other := store.NewTaskStore(s.Connections(), tasks.Table())

			Expect(other.CreateTableIfAbsent(ctx)).To(Succeed())
		})

		It("should surface connection failures", func() {
			cfg := memoryConfig()
			cfg.Driver = "postgres"
			broken := store.NewStore(cfg)

			err := broken.Tasks().CreateTableIfAbsent(ctx)

			Expect(srvErrors.IsConnectionError(err)).To(BeTrue())
		})
	})

	Context("Put and Get", func() {
		// Given a written task
		// When it is read back by id
		// Then the decoded body equals the task
		It("should round trip a task", func() {
			// Arrange
			task := fullTask("Task-1")
			write(task)

			// Act
			result, err := tasks.Get(ctx, "Task-1")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			body, ok := result.Value(store.FamilyData, store.QualifierBody)
			Expect(ok).To(BeTrue())
			decoded, err := enc.Decode(string(body))
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded).To(Equal(task))
		})

		It("should return not found before the table exists", func() {
			_, err := tasks.Get(ctx, "Task-1")

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return not found for an unknown id", func() {
			write(newTask("Task-1"))

			_, err := tasks.Get(ctx, "Task-2")

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		// Given a stored task with a location
		// When it is written again without the location
		// Then the stored location is kept while the body is replaced
		It("should upsert columns without clearing omitted ones", func() {
			// Arrange
			write(newTask("Task-1", func(t *models.Task) {
				t.Status = models.TaskStatusRequested
				t.Location = &models.Reference{Reference: "Location/42"}
			}))

			// Act
			write(newTask("Task-1", func(t *models.Task) {
				t.Status = models.TaskStatusCompleted
			}))

			// Assert
			result, err := tasks.Get(ctx, "Task-1")
			Expect(err).NotTo(HaveOccurred())

			loc, ok := result.Value(store.FamilyInfo, store.QualifierLoc)
			Expect(ok).To(BeTrue())
			Expect(string(loc)).To(Equal("Location/42"))

			status, _ := result.Value(store.FamilyInfo, store.QualifierStatus)
			Expect(string(status)).To(Equal("completed"))

			body, _ := result.Value(store.FamilyData, store.QualifierBody)
			Expect(string(body)).NotTo(ContainSubstring("Location/42"))
		})

		It("should reject a column in an unknown family", func() {
			put := widecol.NewPut("Task-1").AddColumn("META", "X", []byte("y"))

			err := tasks.Put(ctx, put)

			Expect(srvErrors.IsMalformedInputError(err)).To(BeTrue())
		})

		It("should write several rows at once", func() {
			var puts []*widecol.Put
			for _, id := range []string{"Task-1", "Task-2"} {
				put, err := store.Index(newTask(id), enc)
				Expect(err).NotTo(HaveOccurred())
				puts = append(puts, put)
			}

			Expect(tasks.PutAll(ctx, puts)).To(Succeed())

			for _, id := range []string{"Task-1", "Task-2"} {
				_, err := tasks.Get(ctx, id)
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	Context("Scan", func() {
		It("should return no rows before the table exists", func() {
			results, err := tasks.Scan(ctx, widecol.NewScan())

			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(BeEmpty())
		})
	})

	Context("Delete", func() {
		// Given a stored task
		// When it is deleted
		// Then the delete is rejected and the task is unchanged
		It("should always reject deletes", func() {
			// Arrange
			write(fullTask("Task-1"))
			before, err := tasks.Get(ctx, "Task-1")
			Expect(err).NotTo(HaveOccurred())

			// Act
			err = tasks.Delete(ctx, "Task-1")

			// Assert
			Expect(srvErrors.IsUnsupportedOperationError(err)).To(BeTrue())
			after, err := tasks.Get(ctx, "Task-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(after.Cells()).To(Equal(before.Cells()))
		})

		It("should reject deletes of unknown ids", func() {
			Expect(srvErrors.IsUnsupportedOperationError(tasks.Delete(ctx, "nope"))).To(BeTrue())
		})
	})
})
