package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cropsim/internal/chamber"
	"github.com/san-kum/cropsim/internal/crop"
	"github.com/san-kum/cropsim/internal/sim"
)

var _ = Describe("Simulator run invariants", func() {
	var (
		gp crop.GrowthParams
		cp chamber.Params
	)

	BeforeEach(func() {
		gp = crop.DefaultGrowthParams()
		cp = chamber.DefaultParams()
	})

	run := func(scn sim.Scenario) *sim.Result {
		res, err := sim.New(gp, cp).Run(scn)
		Expect(err).NotTo(HaveOccurred())
		return res
	}

	It("produces Days+1 samples in every series", func() {
		scn := sim.DefaultScenario()
		scn.Days = 42
		res := run(scn)

		for _, s := range [][]float64{
			res.ThermalTime, res.LeafDry, res.StemDry, res.TuberDry,
			res.FreshTotal, res.TuberFresh, res.ChamberTemp, res.CumEnergyKWh,
		} {
			Expect(s).To(HaveLen(43))
		}
		Expect(res.Day[0]).To(Equal(0))
		Expect(res.Day[42]).To(Equal(42))
	})

	It("keeps thermal time non-decreasing regardless of the temperature trajectory", func() {
		for _, target := range []float64{4.0, 12.0, 18.0, 26.0} {
			scn := sim.DefaultScenario()
			scn.TargetTempC = target
			res := run(scn)
			for i := 1; i < len(res.ThermalTime); i++ {
				Expect(res.ThermalTime[i]).To(BeNumerically(">=", res.ThermalTime[i-1]))
			}
		}
	})

	It("never produces negative biomass", func() {
		scn := sim.Scenario{
			Days: 60, PPFD: 0, PhotoperiodH: 24, CO2PPM: 100,
			TargetTempC: 35, InitialLeafDryG: 0.5, GroundAreaM2: 0.2,
		}
		res := run(scn)
		for i := range res.Day {
			Expect(res.LeafDry[i]).To(BeNumerically(">=", 0))
			Expect(res.StemDry[i]).To(BeNumerically(">=", 0))
			Expect(res.TuberDry[i]).To(BeNumerically(">=", 0))
		}
	})

	It("accumulates energy linearly, independent of thermal excursions", func() {
		scn := sim.DefaultScenario()
		perDay := cp.DailyEnergyKWh(scn.PhotoperiodH)
		res := run(scn)
		for i, e := range res.CumEnergyKWh {
			Expect(e).To(BeNumerically("~", float64(i)*perDay, 1e-9))
		}
	})

	When("cooling capacity is zero and the ambient is warmer than the target", func() {
		It("lets the chamber climb monotonically toward the uncooled equilibrium", func() {
			cp.CoolingCapacityKJDay = 0
			cp.AmbientTempC = 28.0

			scn := sim.DefaultScenario()
			scn.TargetTempC = 18.0
			res := run(scn)

			eq := cp.EquilibriumTempC()
			for i := 1; i < len(res.ChamberTemp); i++ {
				Expect(res.ChamberTemp[i]).To(BeNumerically(">=", res.ChamberTemp[i-1]))
				Expect(res.ChamberTemp[i]).To(BeNumerically("<=", eq+1e-9))
			}
			Expect(res.ChamberTemp[len(res.ChamberTemp)-1]).To(BeNumerically("~", eq, 0.5))
		})
	})

	It("is bit-identical across repeated runs with the same inputs", func() {
		s := sim.New(gp, cp)
		scn := sim.DefaultScenario()

		a, err := s.Run(scn)
		Expect(err).NotTo(HaveOccurred())
		b, err := s.Run(scn)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.TuberDry).To(Equal(b.TuberDry))
		Expect(a.ChamberTemp).To(Equal(b.ChamberTemp))
		Expect(a.CumEnergyKWh).To(Equal(b.CumEnergyKWh))
	})
})
