package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/stianeikeland/go-rpio/v4"
)

// nixie6 -config={config file}
//
// Six-digit nixie clock controller: multiplexed render loop, HV boost
// regulation with cold-start self-calibration, one-button menu, HTTP
// config service.

func initRuntime(settings configSettings) runtimeConfig {
	clock := clockwork.NewRealClock()
	logger := &ThreadLogger{name: "Init"}

	rt := runtimeConfig{
		comms:    initCommChannels(),
		settings: settings,
		clock:    clock,
		board:    newStatusBoard(),
		logger:   logger,
	}

	if settings.GetBool(sSimulated) {
		logger.Println("GPIO simulated: recording drivers active")
		rt.digits = newLogDigits()
		rt.pwm = &logPwm{}
		adc := newFakeADC()
		// park the fake feedback where the regulator is satisfied
		adc.setChannel(adcChanHV, rawThresholdFor(settings.GetInt(sHVTarget)))
		adc.setChannel(adcChanAmbient, adcFullScale-1)
		rt.adc = adc
		rt.lamps = &logLamps{}
		rt.buttons = &keyButtons{}
	} else {
		if err := rpio.Open(); err != nil {
			log.Fatalf("rpio.Open failed, cannot drive hardware: %v", err)
		}
		rt.digits = newRpioDigits()
		rt.pwm = newRpioPwm()
		adc, err := newMCP3008()
		if err != nil {
			log.Fatalf("SPI ADC init failed: %v", err)
		}
		rt.adc = adc
		rt.lamps = &rpioLamps{}
		rt.buttons = &rpioButtons{}
	}

	rt.rtc = openTimeSource(settings, clock, logger)
	return rt
}

func main() {
	configFile := flag.String("config", "/etc/default/nixie6/nixie6.conf", "config file path")
	flag.Parse()

	settings := initSettings(*configFile)
	setupLogging(settings)
	settings.Dump()

	rt := initRuntime(settings)

	// colons blink at 1Hz from boot
	rt.comms.lamps <- lampMessage(pinColonHigh, lampBlink)
	rt.comms.lamps <- lampMessage(pinColonLow, lampBlink)

	wg.Add(4)
	go runClockLoop(rt)
	go runWatchButtons(rt)
	go runLampController(rt)
	go runTimeSync(rt)
	runConfigService(rt)

	// ^C and SIGTERM shut the HV down cleanly through the quit channel
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Println("signal received, shutting down")
		close(rt.comms.quit)
	}()

	wg.Wait()

	if !settings.GetBool(sSimulated) {
		rpio.Close()
	}
}
