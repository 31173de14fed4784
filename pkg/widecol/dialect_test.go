package widecol_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fhirfactory/hestia-task/pkg/widecol"
)

var _ = Describe("Dialect", func() {
	statusScan := func() *widecol.Scan {
		return widecol.NewScan().
			SetFilter(widecol.NewFilterList(widecol.MustPassAll,
				widecol.DependentColumnFilter("INFO", "STATUS", widecol.RegexStringComparator("^requested$")),
				widecol.DependentColumnFilter("INFO", "LOC", widecol.RegexStringComparator("^Location/42$")),
			)).
			SetLimit(2).
			SetReversed(true)
	}

	Context("DialectFor", func() {
		It("should resolve the known drivers", func() {
			d, err := widecol.DialectFor("postgres")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Driver).To(Equal("postgres"))

			d, err = widecol.DialectFor("duckdb")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Driver).To(Equal("duckdb"))
		})

		It("should reject an unknown driver", func() {
			_, err := widecol.DialectFor("hbase")

			Expect(err).To(MatchError(ContainSubstring(`unsupported driver "hbase"`)))
		})
	})

	Context("Postgres", func() {
		table := widecol.NewStatementTable(widecol.Postgres, "TASK")

		// Given a scan with nested column filters
		// When it is rendered for Postgres
		// Then every placeholder is numbered across the nested subqueries
		It("should number placeholders through nested filters", func() {
			query, args, err := table.ScanQuery(statusScan())

			Expect(err).NotTo(HaveOccurred())
			Expect(query).NotTo(ContainSubstring("?"))
			Expect(query).To(ContainSubstring("family = $1 AND qualifier = $2"))
			Expect(query).To(ContainSubstring("value ~ $3"))
			Expect(query).To(ContainSubstring("family = $4 AND qualifier = $5"))
			Expect(query).To(ContainSubstring("value ~ $6"))
			Expect(query).To(ContainSubstring("ORDER BY row_key DESC LIMIT 2"))
			Expect(query).To(ContainSubstring(`FROM "cells_TASK"`))
			Expect(args).To(Equal([]any{"INFO", "STATUS", "^requested$", "INFO", "LOC", "^Location/42$"}))
		})

		It("should render an upsert with numbered values", func() {
			put := widecol.NewPut("Task-1").
				AddColumn("INFO", "STATUS", []byte("requested")).
				AddColumn("DATA", "BODY", []byte("{}"))

			query, args, err := table.PutQuery(put)

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(ContainSubstring("VALUES ($1,$2,$3,$4),($5,$6,$7,$8)"))
			Expect(query).To(ContainSubstring("ON CONFLICT (row_key, family, qualifier) DO UPDATE SET"))
			Expect(query).To(ContainSubstring("updated_at = now()"))
			Expect(args).To(Equal([]any{"Task-1", "INFO", "STATUS", "requested", "Task-1", "DATA", "BODY", "{}"}))
		})
	})

	Context("DuckDB", func() {
		table := widecol.NewStatementTable(widecol.DuckDB, "TASK")

		It("should match patterns with regexp_matches", func() {
			query, args, err := table.ScanQuery(statusScan())

			Expect(err).NotTo(HaveOccurred())
			Expect(query).NotTo(ContainSubstring("$"))
			Expect(query).To(ContainSubstring("regexp_matches(value, ?)"))
			Expect(args).To(HaveLen(6))
		})

		It("should render an ascending scan without a limit", func() {
			query, args, err := table.ScanQuery(widecol.NewScan())

			Expect(err).NotTo(HaveOccurred())
			Expect(query).To(ContainSubstring("ORDER BY row_key ASC"))
			Expect(query).NotTo(ContainSubstring("LIMIT"))
			Expect(args).To(BeEmpty())
		})
	})
})
