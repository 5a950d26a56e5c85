package dispatch

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/forgelight/eventcore/events"
)

var _ = Describe("HandlerRegistry", func() {
	var registry *HandlerRegistry

	BeforeEach(func() {
		registry = NewHandlerRegistry()
	})

	nop := func(EventData) error { return nil }

	It("should resolve type handlers before name handlers", func() {
		var order []string
		registry.Subscribe(events.TypeWeather, func(EventData) error {
			order = append(order, "type")
			return nil
		})
		registry.SubscribeName("storm", func(EventData) error {
			order = append(order, "name")
			return nil
		})

		for _, h := range registry.Resolve(events.TypeWeather, "storm") {
			Expect(h(EventData{})).To(Succeed())
		}

		Expect(order).To(Equal([]string{"type", "name"}))
	})

	It("should keep registration order within a type", func() {
		var order []int
		for i := 0; i < 5; i++ {
			i := i
			registry.Subscribe(events.TypeWeather, func(EventData) error {
				order = append(order, i)
				return nil
			})
		}

		for _, h := range registry.Resolve(events.TypeWeather, "") {
			Expect(h(EventData{})).To(Succeed())
		}

		Expect(order).To(Equal([]int{0, 1, 2, 3, 4}))
	})

	It("should issue distinct tokens and never reuse them", func() {
		t1 := registry.Subscribe(events.TypeWeather, nop)
		t2 := registry.Subscribe(events.TypeWeather, nop)

		Expect(registry.Unsubscribe(t1)).To(BeTrue())
		t3 := registry.Subscribe(events.TypeWeather, nop)

		Expect(t2).NotTo(Equal(t1))
		Expect(t3).NotTo(Equal(t1))
		Expect(t3).NotTo(Equal(t2))
	})

	It("should treat double unsubscribe as a no-op", func() {
		t1 := registry.Subscribe(events.TypeWeather, nop)

		Expect(registry.Unsubscribe(t1)).To(BeTrue())
		Expect(registry.Unsubscribe(t1)).To(BeFalse())
		Expect(registry.Unsubscribe(Token(9999))).To(BeFalse())
	})

	It("should remove only the unsubscribed handler", func() {
		registry.Subscribe(events.TypeWeather, nop)
		middle := registry.Subscribe(events.TypeWeather, nop)
		registry.Subscribe(events.TypeWeather, nop)

		registry.Unsubscribe(middle)

		Expect(registry.CountForType(events.TypeWeather)).To(Equal(2))
	})

	It("should not let Unsubscribe affect an already-resolved snapshot", func() {
		calls := 0
		token := registry.Subscribe(events.TypeWeather, func(EventData) error {
			calls++
			return nil
		})

		snapshot := registry.Resolve(events.TypeWeather, "")
		registry.Unsubscribe(token)
		for _, h := range snapshot {
			Expect(h(EventData{})).To(Succeed())
		}

		Expect(calls).To(Equal(1))
		Expect(registry.Resolve(events.TypeWeather, "")).To(BeEmpty())
	})

	It("should remove all handlers for a type", func() {
		registry.Subscribe(events.TypeWeather, nop)
		registry.Subscribe(events.TypeWeather, nop)
		registry.SubscribeName("storm", nop)

		Expect(registry.UnsubscribeAllForType(events.TypeWeather)).To(Equal(2))
		Expect(registry.CountForType(events.TypeWeather)).To(Equal(0))
		Expect(registry.CountForName("storm")).To(Equal(1))
	})

	It("should remove all handlers for a name", func() {
		registry.SubscribeName("storm", nop)
		registry.SubscribeName("storm", nop)

		Expect(registry.UnsubscribeAllForName("storm")).To(Equal(2))
		Expect(registry.CountForName("storm")).To(Equal(0))
	})

	It("should clear everything", func() {
		registry.Subscribe(events.TypeWeather, nop)
		registry.SubscribeName("storm", nop)

		registry.ClearAll()

		Expect(registry.Resolve(events.TypeWeather, "storm")).To(BeEmpty())
	})
})
