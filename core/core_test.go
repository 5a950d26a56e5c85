package core

import (
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/forgelight/eventcore/dispatch"
	"github.com/forgelight/eventcore/events"
)

var _ = Describe("Core", func() {
	var c *Core

	BeforeEach(func() {
		c = MakeBuilder().
			WithoutMonitoring().
			WithOutputFileName(filepath.Join(GinkgoT().TempDir(), "run")).
			WithWorkerCount(2).
			WithSampleInterval(1).
			Build()
	})

	AfterEach(func() {
		c.Terminate()
	})

	It("should build a running core", func() {
		Expect(c.ID()).NotTo(BeEmpty())
		Expect(c.Manager().IsInitialized()).To(BeTrue())
		Expect(c.Scheduler().WorkerCount()).To(Equal(2))
		Expect(c.Scheduler().IsStopped()).To(BeFalse())
		Expect(c.Recorder()).NotTo(BeNil())
		Expect(c.Monitor()).To(BeNil())
	})

	It("should dispatch through Update", func() {
		fired := 0
		c.Manager().CreateCustomEvent("scripted", func() bool { return true }, nil)
		c.Manager().Subscribe(events.TypeCustom,
			func(dispatch.EventData) error {
				fired++
				return nil
			})

		c.Update(16 * time.Millisecond)

		Expect(fired).To(Equal(1))
	})

	It("should stop everything on Terminate", func() {
		c.Terminate()

		Expect(c.Manager().IsInitialized()).To(BeFalse())
		Expect(c.Scheduler().IsStopped()).To(BeTrue())
	})

	It("should reject a monitor port without monitoring", func() {
		Expect(func() {
			MakeBuilder().
				WithoutMonitoring().
				WithMonitorPort(8080).
				Build()
		}).To(Panic())
	})

	It("should reject an output file without recording", func() {
		Expect(func() {
			MakeBuilder().
				WithoutStatsRecording().
				WithOutputFileName("somewhere").
				Build()
		}).To(Panic())
	})
})
