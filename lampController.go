package main

import "time"

// Colon neon lamps between the digit pairs. They are plain GPIO loads,
// not part of the multiplexed render loop, so a slow worker owns them.

const (
	lampOff = iota
	lampOn
	lampBlink // 1Hz, half duty, in phase across lamps
	lampUnset
)

type lampEffect struct {
	pin  int
	mode int
	// runtime state
	curMode    int
	lastUpdate time.Time
}

func lampMessage(pin int, mode int) lampEffect {
	return lampEffect{pin: pin, mode: mode, curMode: lampUnset}
}

func runLampController(rt runtimeConfig) {
	defer wg.Done()
	logger := &ThreadLogger{name: "Lamps"}
	defer logger.Println("exiting runLampController")

	if err := rt.lamps.init(); err != nil {
		logger.Println(err.Error())
		return
	}

	lamps := make(map[int]lampEffect)

	for {
		keepReading := true
		for keepReading {
			select {
			case <-rt.comms.quit:
				logger.Println("quit from runLampController")
				for pin := range lamps {
					rt.lamps.off(pin)
				}
				return
			case msg := <-rt.comms.lamps:
				if cur, ok := lamps[msg.pin]; !ok || cur.mode != msg.mode {
					logger.Printf("lamp message: %+v", msg)
					msg.curMode = lampUnset
					lamps[msg.pin] = msg
				}
			default:
				keepReading = false
			}
		}

		now := rt.clock.Now()
		for pin, v := range lamps {
			switch v.mode {
			case lampOff, lampOn:
				if v.curMode != v.mode {
					rt.lamps.set(pin, v.mode == lampOn)
					v.curMode = v.mode
					lamps[pin] = v
				}
			case lampBlink:
				if v.curMode == lampUnset {
					rt.lamps.on(pin)
					v.curMode = lampOn
					v.lastUpdate = now
					lamps[pin] = v
					continue
				}
				if now.Sub(v.lastUpdate) >= 500*time.Millisecond {
					if v.curMode == lampOn {
						rt.lamps.off(pin)
						v.curMode = lampOff
					} else {
						rt.lamps.on(pin)
						v.curMode = lampOn
					}
					v.lastUpdate = now
					lamps[pin] = v
				}
			}
		}

		rt.clock.Sleep(dLampSleep)
	}
}
