package main

import (
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/sandpiper-aero/orbital"
)

var (
	altitudeKm float64
	timeAccel  float64
	wallTime   time.Duration
	csvOut     string
	metricAddr string
	wg         sync.WaitGroup
)

func init() {
	flag.Float64Var(&altitudeKm, "alt", 400, "initial circular orbit altitude (km)")
	flag.Float64Var(&timeAccel, "accel", 60, "time acceleration factor")
	flag.DurationVar(&wallTime, "for", 10*time.Second, "wall clock duration of the run")
	flag.StringVar(&csvOut, "csv", "", "CSV file for the state history (disabled if empty)")
	flag.StringVar(&metricAddr, "metrics", "", "address for the Prometheus endpoint (disabled if empty)")
}

// spacecraft implements the host vehicle contract with a coasting craft.
type spacecraft struct {
	r, v []float64
	mass float64
}

func (s *spacecraft) Position() []float64      { return s.r }
func (s *spacecraft) Velocity() []float64      { return s.v }
func (s *spacecraft) SetPosition(R []float64)  { s.r = R }
func (s *spacecraft) SetVelocity(V []float64)  { s.v = V }
func (s *spacecraft) ThrustVector() []float64  { return []float64{0, 0, 0} }
func (s *spacecraft) ThrustMagnitude() float64 { return 0 }
func (s *spacecraft) Mass() float64            { return s.mass }

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "bin", "orbsim")

	r := orbital.Earth.Radius + altitudeKm*1e3
	v := math.Sqrt(orbital.Earth.GM() / r)
	craft := &spacecraft{r: []float64{r, 0, 0}, v: []float64{0, v, 0}, mass: 1000}

	engine := orbital.NewEngineFromConfig(craft, logger)
	engine.SetTimeAcceleration(timeAccel)

	for _, kind := range []orbital.EventType{orbital.PeriapsisReached, orbital.ApoapsisReached, orbital.AtmosphericEntry, orbital.EscapeVelocityReached} {
		kind := kind
		engine.Bus().Subscribe(kind, func(evt orbital.Event) {
			tick := evt.(orbital.TickEvent)
			logger.Log("level", "notice", "subsys", "events", "event", kind, "t", tick.SimTime, "r", tick.Radius, "v", tick.Speed)
		})
	}

	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			logger.Log("level", "critical", "subsys", "main", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		hist := make(chan orbital.HistoryEntry, 1024)
		engine.SetHistoryChannel(hist)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := orbital.StreamStates(f, hist); err != nil {
				logger.Log("level", "critical", "subsys", "main", "err", err)
			}
		}()
		defer func() {
			close(hist)
			wg.Wait()
		}()
	}

	if metricAddr != "" {
		go func() {
			http.Handle("/metrics", orbital.MetricsHandler())
			if err := http.ListenAndServe(metricAddr, nil); err != nil {
				logger.Log("level", "critical", "subsys", "main", "err", err)
			}
		}()
	}

	// Size the GEO raise before the run starts: the plan is a side effect
	// free record, not an executed maneuver.
	xfer := engine.PlanHohmannTransfer([]float64{0, 4.2164e7, 0})
	logger.Log("level", "info", "subsys", "astro", "transfer", xfer, "ΔV", xfer.DeltaV, "tof", xfer.TransferTime)

	sched := orbital.NewScheduler(engine)
	go sched.Run()
	time.Sleep(wallTime)
	sched.Stop()

	a, e, i, _, _, _ := engine.Elements().Elements()
	logger.Log("level", "notice", "subsys", "main", "status", "done", "simTime", engine.Clock().Elapsed(), "a", a, "e", e, "i", i)
	fmt.Printf("final altitude: %.1f km after %.1f s of simulation\n", engine.Altitude()/1e3, engine.Clock().Elapsed())
}
