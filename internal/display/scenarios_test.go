package display

import (
	"github.com/gdamore/tcell/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Display", func() {
	var (
		sink *recordingSink
		d    *Display
	)

	BeforeEach(func() {
		sink = newRecordingSink()
		var err error
		d, err = New(fixedSize{w: 3, h: 2}, sink)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("a 3x2 grid through its lifecycle", func() {
		bold := Cell{Ch: '#', Fg: tcell.ColorWhite, Bg: tcell.ColorBlack, Attr: AttrBold}

		It("repaints, diffs and repaints again after a resize", func() {
			By("rendering an untouched display")
			Expect(d.Render()).To(Succeed())
			Expect(sink.emitted).To(HaveLen(6))
			for _, pc := range sink.emitted {
				Expect(pc.Cell).To(Equal(Empty()))
			}
			Expect(d.previous.cells).To(HaveEach(Empty()))

			By("writing one bold cell after forcing a full repaint")
			d.Invalidate()
			sink.reset()
			Expect(d.Write(1, 0, bold)).To(Succeed())
			Expect(d.Render()).To(Succeed())
			Expect(sink.emitted).To(HaveLen(6))
			Expect(sink.emitted).To(ContainElement(placedCell{X: 1, Y: 0, Cell: bold}))
			Expect(d.previous.cells[1]).To(Equal(bold))
			Expect(d.current.cells).To(HaveEach(Empty()))

			By("rendering again without writes")
			sink.reset()
			Expect(d.Render()).To(Succeed())
			Expect(sink.moves()).To(Equal(1))
			Expect(sink.emitted).To(Equal([]placedCell{{X: 1, Y: 0, Cell: Empty()}}))

			By("resizing to 4x4")
			d.Resize(4, 4)
			sink.reset()
			Expect(d.Render()).To(Succeed())
			Expect(sink.emitted).To(HaveLen(16))
			Expect(sink.moves()).To(Equal(4))
			Expect(d.LastFrame().Full).To(BeTrue())
		})
	})

	Describe("delta repaint", func() {
		BeforeEach(func() {
			Expect(d.Render()).To(Succeed())
			sink.reset()
		})

		DescribeTable("a single changed cell costs one move and one cell",
			func(x, y int, c Cell) {
				Expect(d.Write(x, y, c)).To(Succeed())
				Expect(d.Render()).To(Succeed())
				Expect(sink.moves()).To(Equal(1))
				Expect(sink.emitted).To(Equal([]placedCell{{X: x, Y: y, Cell: c}}))
				Expect(sink.flushes).To(Equal(1))
			},
			Entry("changed character", 0, 0, Cell{Ch: 'x', Fg: DefaultForeground, Bg: DefaultBackground}),
			Entry("changed foreground", 2, 1, Cell{Ch: ' ', Fg: tcell.ColorRed, Bg: DefaultBackground}),
			Entry("changed background", 1, 1, EmptyColored(tcell.ColorBlue)),
			Entry("changed attribute", 2, 0, Cell{Ch: ' ', Fg: DefaultForeground, Bg: DefaultBackground, Attr: AttrReverse}),
		)

		It("emits nothing when the frame is redrawn identically", func() {
			Expect(d.Write(1, 1, Cell{Ch: '@'})).To(Succeed())
			Expect(d.Render()).To(Succeed())
			sink.reset()

			Expect(d.Write(1, 1, Cell{Ch: '@'})).To(Succeed())
			Expect(d.Render()).To(Succeed())
			Expect(sink.emitted).To(BeEmpty())
			Expect(sink.ops).To(Equal([]string{"flush"}))
		})

		It("repaints every cell on a colored clear", func() {
			bg := tcell.NewRGBColor(0x18, 0x18, 0x18)
			d.ClearColored(bg)
			Expect(d.Render()).To(Succeed())
			Expect(sink.emitted).To(HaveLen(6))
			for _, pc := range sink.emitted {
				Expect(pc.Cell).To(Equal(EmptyColored(bg)))
			}
		})
	})

	Describe("resize", func() {
		It("forces a full repaint even when content coincides", func() {
			Expect(d.Render()).To(Succeed())
			d.Resize(3, 2)
			sink.reset()

			Expect(d.Render()).To(Succeed())
			Expect(sink.emitted).To(HaveLen(6))
		})
	})
})
