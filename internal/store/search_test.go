package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fhirfactory/hestia-task/internal/codec"
	"github.com/fhirfactory/hestia-task/internal/models"
	"github.com/fhirfactory/hestia-task/internal/store"
	"github.com/fhirfactory/hestia-task/pkg/widecol"
)

// countingScanner records whether a scan was attempted.
type countingScanner struct {
	scans int
}

func (c *countingScanner) Scan(context.Context, *widecol.Scan) ([]*widecol.Result, error) {
	c.scans++
	return nil, nil
}

var _ = Describe("SearchEngine", func() {
	var (
		ctx    context.Context
		s      *store.Store
		engine *store.SearchEngine
		enc    codec.JSON
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = store.NewStore(memoryConfig())
		engine = s.Search()
		DeferCleanup(s.Close)
	})

	write := func(task *models.Task) string {
		put, err := store.Index(task, enc)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Tasks().Put(ctx, put)).To(Succeed())
		body, _ := put.Value(store.FamilyData, store.QualifierBody)
		return string(body)
	}

	ids := func(bodies []string) []string {
		out := make([]string, 0, len(bodies))
		for _, b := range bodies {
			t, err := enc.Decode(b)
			Expect(err).NotTo(HaveOccurred())
			out = append(out, t.ID)
		}
		return out
	}

	Context("scenarios", func() {
		// Given Task-1 at Location/42 with status completed
		// When searching by that location and by another one
		// Then only the matching search returns Task-1
		It("should find a task by location", func() {
			// Arrange
			body := write(newTask("Task-1", func(t *models.Task) {
				t.Location = &models.Reference{Reference: "Location/42"}
				t.Status = models.TaskStatusCompleted
			}))

			// Act
			hit, err := engine.DoSearch(ctx, models.TaskSearchParams{Location: "Location/42"})
			Expect(err).NotTo(HaveOccurred())
			miss, err := engine.DoSearch(ctx, models.TaskSearchParams{Location: "Location/99"})
			Expect(err).NotTo(HaveOccurred())

			// Assert
			Expect(hit).To(Equal([]string{body}))
			Expect(miss).To(BeEmpty())
		})

		// Given one requested and one completed task
		// When searching for requested with a limit of one
		// Then exactly the requested task is returned
		It("should find a task by status with a limit", func() {
			write(newTask("Task-1", func(t *models.Task) { t.Status = models.TaskStatusRequested }))
			write(newTask("Task-2", func(t *models.Task) { t.Status = models.TaskStatusCompleted }))

			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Status: "requested", Limit: "1"})

			Expect(err).NotTo(HaveOccurred())
			Expect(ids(bodies)).To(Equal([]string{"Task-1"}))
		})
	})

	Context("conjunction", func() {
		BeforeEach(func() {
			write(newTask("Task-1", func(t *models.Task) {
				t.Status = models.TaskStatusRequested
				t.Owner = &models.Reference{Reference: "Practitioner/1"}
			}))
			write(newTask("Task-2", func(t *models.Task) {
				t.Status = models.TaskStatusRequested
				t.Owner = &models.Reference{Reference: "Practitioner/2"}
			}))
			write(newTask("Task-3", func(t *models.Task) {
				t.Status = models.TaskStatusCompleted
				t.Owner = &models.Reference{Reference: "Practitioner/1"}
			}))
			write(newTask("Task-4", func(t *models.Task) {
				t.Owner = &models.Reference{Reference: "Practitioner/1"}
				t.Focus = &models.Reference{Reference: "Patient/1"}
			}))
		})

		It("should require every attribute to match", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Status: "requested", Owner: "Practitioner/1"})

			Expect(err).NotTo(HaveOccurred())
			Expect(ids(bodies)).To(Equal([]string{"Task-1"}))
		})

		It("should not match rows missing one of the attributes", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Owner: "Practitioner/1", Focus: "Patient/1"})

			Expect(err).NotTo(HaveOccurred())
			Expect(ids(bodies)).To(Equal([]string{"Task-4"}))
		})

		It("should return matches in ascending key order without a limit", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Owner: "Practitioner/1"})

			Expect(err).NotTo(HaveOccurred())
			Expect(ids(bodies)).To(Equal([]string{"Task-1", "Task-3", "Task-4"}))
		})

		It("should ignore descending order without a limit", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Owner: "Practitioner/1", Direction: models.DirectionDescending})

			Expect(err).NotTo(HaveOccurred())
			Expect(ids(bodies)).To(Equal([]string{"Task-1", "Task-3", "Task-4"}))
		})

		It("should cap results at the limit in descending order", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Owner: "Practitioner/1", Limit: "2"})

			Expect(err).NotTo(HaveOccurred())
			Expect(ids(bodies)).To(Equal([]string{"Task-4", "Task-3"}))
		})

		It("should honor ascending order with a limit", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{
				Owner:     "Practitioner/1",
				Limit:     "2",
				Direction: models.DirectionAscending,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(ids(bodies)).To(Equal([]string{"Task-1", "Task-3"}))
		})

		It("should accept the largest signed 64-bit limit", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Owner: "Practitioner/1", Limit: "9223372036854775807"})

			Expect(err).NotTo(HaveOccurred())
			Expect(ids(bodies)).To(Equal([]string{"Task-4", "Task-3", "Task-1"}))
		})

		It("should ignore blank attributes", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Status: "completed", Owner: "  "})

			Expect(err).NotTo(HaveOccurred())
			Expect(ids(bodies)).To(Equal([]string{"Task-3"}))
		})
	})

	Context("matching", func() {
		It("should match values literally", func() {
			write(newTask("Task-1", func(t *models.Task) { t.Code = &models.CodeableConcept{Text: "a.b(c)"} }))
			write(newTask("Task-2", func(t *models.Task) { t.Code = &models.CodeableConcept{Text: "aXbc"} }))

			literal, err := engine.DoSearch(ctx, models.TaskSearchParams{Code: "a.b(c)"})
			Expect(err).NotTo(HaveOccurred())
			wildcard, err := engine.DoSearch(ctx, models.TaskSearchParams{Code: "a.b.*"})
			Expect(err).NotTo(HaveOccurred())

			Expect(ids(literal)).To(Equal([]string{"Task-1"}))
			Expect(wildcard).To(BeEmpty())
		})

		It("should not match a prefix", func() {
			write(newTask("Task-1", func(t *models.Task) { t.Location = &models.Reference{Reference: "Location/420"} }))

			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Location: "Location/42"})

			Expect(err).NotTo(HaveOccurred())
			Expect(bodies).To(BeEmpty())
		})

		It("should skip rows without a body", func() {
			put := widecol.NewPut("Task-1").AddColumn(store.FamilyInfo, store.QualifierStatus, []byte("draft"))
			Expect(s.Tasks().Put(ctx, put)).To(Succeed())

			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Status: "draft"})

			Expect(err).NotTo(HaveOccurred())
			Expect(bodies).To(BeEmpty())
		})

		It("should return nothing before the table exists", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Status: "draft"})

			Expect(err).NotTo(HaveOccurred())
			Expect(bodies).To(BeEmpty())
		})
	})

	Context("short circuits", func() {
		var scanner *countingScanner

		BeforeEach(func() {
			scanner = &countingScanner{}
			engine = store.NewSearchEngine(scanner)
		})

		It("should not scan without attributes", func() {
			bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Limit: "5"})

			Expect(err).NotTo(HaveOccurred())
			Expect(bodies).To(BeEmpty())
			Expect(scanner.scans).To(BeZero())
		})

		DescribeTable("should not scan with an invalid limit",
			func(limit string) {
				bodies, err := engine.DoSearch(ctx, models.TaskSearchParams{Status: "draft", Limit: limit})

				Expect(err).NotTo(HaveOccurred())
				Expect(bodies).To(BeEmpty())
				Expect(scanner.scans).To(BeZero())
			},
			Entry("text", "ten"),
			Entry("zero", "0"),
			Entry("negative", "-3"),
			Entry("fraction", "1.5"),
			Entry("beyond a signed 64-bit integer", "9223372036854775808"),
		)

		It("should scan with a valid limit", func() {
			_, err := engine.DoSearch(ctx, models.TaskSearchParams{Status: "draft", Limit: " 3 "})

			Expect(err).NotTo(HaveOccurred())
			Expect(scanner.scans).To(Equal(1))
		})
	})

	Context("ExactPattern", func() {
		It("should anchor and quote the value", func() {
			Expect(store.ExactPattern("Location/4.2")).To(Equal(`^Location/4\.2$`))
		})
	})
})
