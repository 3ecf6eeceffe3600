package memory

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status", func() {
	It("recognizes the known statuses", func() {
		Expect(StatusProcessing.Valid()).To(BeTrue())
		Expect(StatusCompleted.Valid()).To(BeTrue())
		Expect(StatusFailed.Valid()).To(BeTrue())
		Expect(Status("done").Valid()).To(BeFalse())
	})

	It("treats completed and failed as terminal", func() {
		Expect(StatusProcessing.Terminal()).To(BeFalse())
		Expect(StatusCompleted.Terminal()).To(BeTrue())
		Expect(StatusFailed.Terminal()).To(BeTrue())
	})
})

var _ = Describe("StructuredMemory", func() {
	Describe("IsEmpty", func() {
		It("is empty with no content", func() {
			m := &StructuredMemory{}
			Expect(m.IsEmpty()).To(BeTrue())
		})

		It("is not empty with any single list populated", func() {
			Expect((&StructuredMemory{Facts: []string{"a"}}).IsEmpty()).To(BeFalse())
			Expect((&StructuredMemory{OpenQuestions: []string{"q"}}).IsEmpty()).To(BeFalse())
			Expect((&StructuredMemory{Entities: []Entity{{Name: "x"}}}).IsEmpty()).To(BeFalse())
		})
	})

	Describe("Encode and Decode", func() {
		It("round-trips a populated memory", func() {
			m := &StructuredMemory{
				Facts:     []string{"lives in Lisbon"},
				Decisions: []string{"use postgres"},
				Entities:  []Entity{{Name: "Ada", Aliases: []string{"A."}, Notes: "engineer"}},
			}

			text, err := m.Encode()
			Expect(err).NotTo(HaveOccurred())

			decoded := Decode(text)
			Expect(decoded).To(Equal(m))
		})

		It("decodes empty text to nil", func() {
			Expect(Decode("")).To(BeNil())
			Expect(Decode("   \n\t")).To(BeNil())
		})

		It("wraps non-JSON text as a single fact", func() {
			decoded := Decode("the user likes plain prose summaries")
			Expect(decoded).NotTo(BeNil())
			Expect(decoded.Facts).To(Equal([]string{"the user likes plain prose summaries"}))
			Expect(decoded.Decisions).To(BeEmpty())
		})
	})
})

var _ = Describe("PlanWindow", func() {
	const (
		summarizeAfter = 5
		rollingSize    = 14
	)

	It("does not plan below the threshold", func() {
		_, ok := PlanWindow(4, summarizeAfter, rollingSize)
		Expect(ok).To(BeFalse())
	})

	It("plans from sequence zero for a young conversation", func() {
		w, ok := PlanWindow(5, summarizeAfter, rollingSize)
		Expect(ok).To(BeTrue())
		Expect(w).To(Equal(Window{Start: 0, End: 5}))
	})

	It("rounds an odd start up to the next even sequence", func() {
		// 20 - 14 + 1 = 7, rounded up to 8.
		w, ok := PlanWindow(20, summarizeAfter, rollingSize)
		Expect(ok).To(BeTrue())
		Expect(w).To(Equal(Window{Start: 8, End: 20}))
	})

	It("keeps an already even start", func() {
		// 21 - 14 + 1 = 8.
		w, ok := PlanWindow(21, summarizeAfter, rollingSize)
		Expect(ok).To(BeTrue())
		Expect(w).To(Equal(Window{Start: 8, End: 21}))
	})
})

var _ = Describe("Merge", func() {
	It("returns incoming unchanged for a nil base", func() {
		incoming := StructuredMemory{Facts: []string{"a", "b"}}
		Expect(Merge(nil, incoming)).To(Equal(incoming))
	})

	It("deduplicates scalar lists preserving first-seen order", func() {
		base := &StructuredMemory{Facts: []string{"a", "b"}}
		incoming := StructuredMemory{Facts: []string{"b", "c"}}

		merged := Merge(base, incoming)
		Expect(merged.Facts).To(Equal([]string{"a", "b", "c"}))
	})

	It("keeps the most recent entries when a list exceeds its cap", func() {
		base := &StructuredMemory{Facts: []string{"f0", "f1", "f2", "f3", "f4", "f5", "f6", "f7"}}
		incoming := StructuredMemory{Facts: []string{"f8", "f9", "f10", "f11"}}

		merged := Merge(base, incoming)
		Expect(merged.Facts).To(HaveLen(10))
		Expect(merged.Facts[0]).To(Equal("f2"))
		Expect(merged.Facts[9]).To(Equal("f11"))
	})

	It("caps decisions and preferences at five", func() {
		base := &StructuredMemory{
			Decisions:       []string{"d1", "d2", "d3", "d4"},
			UserPreferences: []string{"p1", "p2", "p3", "p4"},
		}
		incoming := StructuredMemory{
			Decisions:       []string{"d5", "d6"},
			UserPreferences: []string{"p5", "p6"},
		}

		merged := Merge(base, incoming)
		Expect(merged.Decisions).To(Equal([]string{"d2", "d3", "d4", "d5", "d6"}))
		Expect(merged.UserPreferences).To(Equal([]string{"p2", "p3", "p4", "p5", "p6"}))
	})

	It("replaces open questions wholesale", func() {
		base := &StructuredMemory{OpenQuestions: []string{"old question?"}}
		incoming := StructuredMemory{OpenQuestions: []string{"new question?"}}

		merged := Merge(base, incoming)
		Expect(merged.OpenQuestions).To(Equal([]string{"new question?"}))
	})

	It("drops open questions the incoming memory resolved", func() {
		base := &StructuredMemory{
			Facts:         []string{"a"},
			OpenQuestions: []string{"resolved now?"},
		}
		incoming := StructuredMemory{Facts: []string{"b"}}

		merged := Merge(base, incoming)
		Expect(merged.OpenQuestions).To(BeEmpty())
	})

	Describe("entities", func() {
		It("merges by case-insensitive name", func() {
			base := &StructuredMemory{Entities: []Entity{{Name: "Postgres", Notes: "primary db"}}}
			incoming := StructuredMemory{Entities: []Entity{{Name: "postgres", Aliases: []string{"pg"}}}}

			merged := Merge(base, incoming)
			Expect(merged.Entities).To(HaveLen(1))
			Expect(merged.Entities[0].Name).To(Equal("postgres"))
			Expect(merged.Entities[0].Aliases).To(Equal([]string{"pg"}))
		})

		It("keeps base notes when incoming notes are empty", func() {
			base := &StructuredMemory{Entities: []Entity{{Name: "Ada", Notes: "engineer"}}}
			incoming := StructuredMemory{Entities: []Entity{{Name: "ada"}}}

			merged := Merge(base, incoming)
			Expect(merged.Entities[0].Notes).To(Equal("engineer"))
		})

		It("prefers incoming notes when present", func() {
			base := &StructuredMemory{Entities: []Entity{{Name: "Ada", Notes: "engineer"}}}
			incoming := StructuredMemory{Entities: []Entity{{Name: "Ada", Notes: "tech lead"}}}

			merged := Merge(base, incoming)
			Expect(merged.Entities[0].Notes).To(Equal("tech lead"))
		})

		It("unions aliases preserving first-seen order", func() {
			base := &StructuredMemory{Entities: []Entity{{Name: "Ada", Aliases: []string{"A.", "Lovelace"}}}}
			incoming := StructuredMemory{Entities: []Entity{{Name: "ada", Aliases: []string{"Lovelace", "AL"}}}}

			merged := Merge(base, incoming)
			Expect(merged.Entities[0].Aliases).To(Equal([]string{"A.", "Lovelace", "AL"}))
		})

		It("keeps base positions and appends new entities", func() {
			base := &StructuredMemory{Entities: []Entity{{Name: "one"}, {Name: "two"}}}
			incoming := StructuredMemory{Entities: []Entity{{Name: "two"}, {Name: "three"}}}

			merged := Merge(base, incoming)
			Expect(merged.Entities).To(HaveLen(3))
			Expect(merged.Entities[0].Name).To(Equal("one"))
			Expect(merged.Entities[1].Name).To(Equal("two"))
			Expect(merged.Entities[2].Name).To(Equal("three"))
		})

		It("caps entities at ten", func() {
			entities := make([]Entity, 12)
			for i := range entities {
				entities[i] = Entity{Name: string(rune('a' + i))}
			}

			merged := Merge(&StructuredMemory{}, StructuredMemory{Entities: entities})
			Expect(merged.Entities).To(HaveLen(10))
		})
	})

	It("is idempotent when merging a memory into itself", func() {
		m := StructuredMemory{
			Facts:         []string{"a", "b"},
			Decisions:     []string{"d"},
			OpenQuestions: []string{"q?"},
			Entities:      []Entity{{Name: "Ada"}},
		}

		merged := Merge(&m, m)
		Expect(merged).To(Equal(m))
	})
})
