package pv_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pvcalc/pkg/pv"
)

var _ = Describe("JunctionVoltage", func() {
	It("matches the closed form for a symmetric silicon junction", func() {
		vbi := pv.JunctionVoltage(1e16, 1e16, 1e10, 300)
		want := pv.Boltzmann * 300 / pv.ElementaryCharge * math.Log(1e12)
		Expect(vbi).To(BeNumerically("~", want, 1e-12))
		Expect(vbi).To(BeNumerically("~", 0.714, 0.003))
	})

	It("increases with the doping product", func() {
		prev := pv.JunctionVoltage(1e14, 1e14, 1e10, 300)
		for _, n := range []float64{1e15, 1e16, 1e17, 1e18} {
			v := pv.JunctionVoltage(n, n, 1e10, 300)
			Expect(v).To(BeNumerically(">", prev))
			prev = v
		}
	})

	It("increases with temperature while the log argument exceeds one", func() {
		prev := pv.JunctionVoltage(1e16, 1e16, 1e10, 200)
		for _, t := range []float64{250, 300, 350, 400} {
			v := pv.JunctionVoltage(1e16, 1e16, 1e10, t)
			Expect(v).To(BeNumerically(">", prev))
			prev = v
		}
	})

	It("propagates non-finite results for non-physical input", func() {
		Expect(math.IsInf(pv.JunctionVoltage(1e16, 1e16, 0, 300), 1)).To(BeTrue())
		Expect(math.IsNaN(pv.JunctionVoltage(-1e16, 1e16, 1e10, 300))).To(BeTrue())
	})
})

var _ = Describe("DepletionWidth", func() {
	It("is non-negative for positive inputs", func() {
		for _, n := range []float64{1e14, 1e16, 1e18} {
			Expect(pv.DepletionWidth(n, 1e16, 0.7)).To(BeNumerically(">=", 0))
		}
	})

	It("decreases as either doping increases", func() {
		base := pv.DepletionWidth(1e16, 1e16, 0.7)
		Expect(pv.DepletionWidth(1e17, 1e16, 0.7)).To(BeNumerically("<", base))
		Expect(pv.DepletionWidth(1e16, 1e17, 0.7)).To(BeNumerically("<", base))
	})

	It("defaults to silicon permittivity", func() {
		Expect(pv.DepletionWidth(1e16, 1e16, 0.714)).To(Equal(
			pv.DepletionWidthPermittivity(1e16, 1e16, 0.714, pv.SiliconPermittivity)))
		Expect(pv.DepletionWidth(1e16, 1e16, 0.714)).To(BeNumerically("~", 0.43, 0.01))
	})
})

var _ = Describe("SpectralRadiance", func() {
	wavelengths := []float64{300e-9, 500e-9, 1000e-9, 2000e-9}

	It("preserves length and order", func() {
		out := pv.SpectralRadiance(wavelengths, 5800)
		Expect(out).To(HaveLen(len(wavelengths)))
		for i, l := range wavelengths {
			Expect(out[i]).To(BeNumerically("~", pv.BlackbodyRadiance(l, 5800), 1e-6*out[i]))
		}
	})

	It("is strictly positive for physical input", func() {
		out := pv.SpectralRadiance(wavelengths, 5800)
		Expect(out.IsValid()).To(BeTrue())
		for _, b := range out {
			Expect(b).To(BeNumerically(">", 0))
		}
	})

	It("agrees exactly with the scalar form", func() {
		out := pv.SpectralRadiance(wavelengths, 3000)
		for i, l := range wavelengths {
			Expect(out[i]).To(Equal(pv.BlackbodyRadiance(l, 3000)))
		}
	})

	It("does not modify its input", func() {
		in := []float64{400e-9, 800e-9}
		pv.SpectralRadiance(in, 3000)
		Expect(in).To(Equal([]float64{400e-9, 800e-9}))
	})

	It("returns an empty slice for no wavelengths", func() {
		out := pv.SpectralRadiance(nil, 5800)
		Expect(out).NotTo(BeNil())
		Expect(out).To(BeEmpty())
	})

	It("peaks where Wien's law predicts", func() {
		var l []float64
		for nm := 100.0; nm <= 3000; nm++ {
			l = append(l, nm*1e-9)
		}
		out := pv.SpectralRadiance(l, 5800)
		peak := 0
		for i := range out {
			if out[i] > out[peak] {
				peak = i
			}
		}
		Expect(l[peak]).To(BeNumerically("~", 2.897771955e-3/5800, 2e-9))
	})
})

var _ = Describe("AirMass", func() {
	It("is one with the sun at zenith", func() {
		Expect(pv.AirMass(0)).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("is two at 60 degrees", func() {
		Expect(pv.AirMass(60)).To(BeNumerically("~", 2.0, 1e-9))
	})

	It("diverges towards the horizon", func() {
		Expect(pv.AirMass(89.999)).To(BeNumerically(">", 1e4))
	})
})

var _ = Describe("OpenCircuitVoltage", func() {
	It("is zero without photocurrent", func() {
		Expect(pv.OpenCircuitVoltage(0, 1e-12, 300)).To(Equal(0.0))
	})

	It("increases with the current ratio", func() {
		prev := pv.OpenCircuitVoltage(1, 1e-12, 300)
		for _, jph := range []float64{10, 35, 100} {
			v := pv.OpenCircuitVoltage(jph, 1e-12, 300)
			Expect(v).To(BeNumerically(">", prev))
			prev = v
		}
	})
})

var _ = Describe("Efficiency", func() {
	It("is ten percent for the reference cell", func() {
		Expect(pv.Efficiency(0.5, 2.0, 0.1, 0.1)).To(BeNumerically("~", 0.1, 1e-12))
	})

	It("scales linearly in voltage and current", func() {
		base := pv.Efficiency(0.5, 2.0, 0.1, 0.1)
		Expect(pv.Efficiency(1.0, 2.0, 0.1, 0.1)).To(BeNumerically("~", 2*base, 1e-12))
		Expect(pv.Efficiency(0.5, 6.0, 0.1, 0.1)).To(BeNumerically("~", 3*base, 1e-12))
	})

	It("scales inversely with area", func() {
		base := pv.Efficiency(0.5, 2.0, 0.1, 0.1)
		Expect(pv.Efficiency(0.5, 2.0, 0.2, 0.1)).To(BeNumerically("~", base/2, 1e-12))
		Expect(pv.Efficiency(0.5, 2.0, 0.2, 0.2)).To(BeNumerically("~", base/4, 1e-12))
	})
})
