package dispatch

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/forgelight/eventcore/events"
)

var _ = Describe("PerfTracker", func() {
	var tracker *PerfTracker

	BeforeEach(func() {
		tracker = NewPerfTracker()
	})

	It("should track count, total, min, max, and average per type", func() {
		tracker.Record(events.TypeWeather, 2*time.Millisecond)
		tracker.Record(events.TypeWeather, 4*time.Millisecond)
		tracker.Record(events.TypeWeather, 6*time.Millisecond)

		s := tracker.Stats(events.TypeWeather)

		Expect(s.Count).To(Equal(uint64(3)))
		Expect(s.Total).To(Equal(12 * time.Millisecond))
		Expect(s.Min).To(Equal(2 * time.Millisecond))
		Expect(s.Max).To(Equal(6 * time.Millisecond))
		Expect(s.Average).To(Equal(4 * time.Millisecond))
	})

	It("should keep types independent", func() {
		tracker.Record(events.TypeWeather, time.Millisecond)
		tracker.Record(events.TypeNPCSpawn, 5*time.Millisecond)

		Expect(tracker.Stats(events.TypeWeather).Max).To(Equal(time.Millisecond))
		Expect(tracker.Stats(events.TypeNPCSpawn).Min).To(Equal(5 * time.Millisecond))
	})

	It("should report zeroes for an untouched type", func() {
		s := tracker.Stats(events.TypeCamera)

		Expect(s.Count).To(BeZero())
		Expect(s.Average).To(BeZero())
	})

	It("should ignore out-of-range types", func() {
		tracker.Record(events.TypeID(-1), time.Millisecond)
		tracker.Record(events.TypeCount, time.Millisecond)

		Expect(tracker.AllStats()).To(BeEmpty())
	})

	It("should only list types with at least one sample", func() {
		tracker.Record(events.TypeWeather, time.Millisecond)
		tracker.Record(events.TypeCustom, time.Millisecond)

		all := tracker.AllStats()

		Expect(all).To(HaveLen(2))
		Expect(all[0].Type).To(Equal(events.TypeWeather))
		Expect(all[1].Type).To(Equal(events.TypeCustom))
	})

	It("should zero everything on reset", func() {
		tracker.Record(events.TypeWeather, time.Millisecond)

		tracker.Reset()

		Expect(tracker.AllStats()).To(BeEmpty())
	})

	It("should tolerate concurrent recording", func() {
		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 500; i++ {
					tracker.Record(events.TypeWeather, time.Microsecond)
				}
			}()
		}
		wg.Wait()

		Expect(tracker.Stats(events.TypeWeather).Count).To(Equal(uint64(4000)))
	})

	It("should serve snapshots while recording continues", func() {
		stop := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := time.Microsecond
			for {
				select {
				case <-stop:
					return
				default:
					tracker.Record(events.TypeWeather, d)
					d += time.Microsecond
				}
			}
		}()

		// Snapshots are eventually consistent across fields, so only
		// per-field properties hold mid-burst.
		for i := 0; i < 200; i++ {
			s := tracker.Stats(events.TypeWeather)
			if s.Min > 0 {
				Expect(s.Min).To(BeNumerically(">=", time.Microsecond))
			}
			if s.Max > 0 {
				Expect(s.Max).To(BeNumerically(">=", time.Microsecond))
			}
			tracker.AllStats()
		}

		close(stop)
		wg.Wait()
	})
})
