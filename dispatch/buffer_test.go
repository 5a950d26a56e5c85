package dispatch

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("pendingBuffer", func() {
	var buf *pendingBuffer

	BeforeEach(func() {
		buf = newPendingBuffer()
	})

	It("should hand back pushed envelopes in order on swap", func() {
		buf.Push(EventData{Name: "a"})
		buf.Push(EventData{Name: "b"})

		out := buf.Swap()

		Expect(out).To(HaveLen(2))
		Expect(out[0].Name).To(Equal("a"))
		Expect(out[1].Name).To(Equal("b"))
		Expect(buf.Len()).To(Equal(0))
	})

	It("should keep envelopes pushed during a drain for the next swap", func() {
		buf.Push(EventData{Name: "a"})
		first := buf.Swap()
		buf.Push(EventData{Name: "b"})

		second := buf.Swap()

		Expect(first[0].Name).To(Equal("a"))
		Expect(second).To(HaveLen(1))
		Expect(second[0].Name).To(Equal("b"))
	})

	It("should drop the oldest envelope at capacity", func() {
		for i := 0; i < maxPending+3; i++ {
			buf.Push(EventData{priority: i})
		}

		out := buf.Swap()

		Expect(out).To(HaveLen(maxPending))
		Expect(out[0].priority).To(Equal(3))
		Expect(buf.Dropped()).To(Equal(uint64(3)))
	})

	It("should consume evicted envelopes", func() {
		consumed := 0
		for i := 0; i < maxPending+1; i++ {
			buf.Push(EventData{onConsumed: func() { consumed++ }})
		}

		Expect(consumed).To(Equal(1))
	})

	It("should not lose envelopes under concurrent producers", func() {
		const producers = 8
		const perProducer = 200

		var wg sync.WaitGroup
		for p := 0; p < producers; p++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perProducer; i++ {
					buf.Push(EventData{Name: "x"})
				}
			}()
		}

		total := 0
		done := make(chan struct{})
		go func() { wg.Wait(); close(done) }()
		for {
			total += len(buf.Swap())
			select {
			case <-done:
				total += len(buf.Swap())
				Expect(total).To(Equal(producers * perProducer))
				return
			default:
			}
		}
	})

	It("should consume everything on clear", func() {
		consumed := 0
		buf.Push(EventData{onConsumed: func() { consumed++ }})
		buf.Push(EventData{onConsumed: func() { consumed++ }})

		buf.Clear()

		Expect(consumed).To(Equal(2))
		Expect(buf.Len()).To(Equal(0))
	})
})
