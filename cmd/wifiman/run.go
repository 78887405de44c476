package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"wifiman/internal/adapters/notify/mqtt"
	"wifiman/internal/modkit"
	"wifiman/internal/modkit/module"
	phttp "wifiman/internal/platform/net/http"
	portalmod "wifiman/internal/services/portal/module"
	pdom "wifiman/internal/services/provision/domain"
	provmod "wifiman/internal/services/provision/module"
	stationmod "wifiman/internal/services/station/module"
	"wifiman/internal/services/statusapi"
	statusmod "wifiman/internal/services/statusapi/module"

	"github.com/spf13/cobra"
)

type runFlags struct {
	once       bool
	reboot     bool
	portalAddr string
}

func newRunCommand() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Join a saved network or serve the portal, then keep watching the link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDaemon(cmd.Context(), f)
		},
	}
	cmd.Flags().BoolVar(&f.once, "once", false, "run a single provisioning cycle and exit")
	cmd.Flags().BoolVar(&f.reboot, "reboot", false, "reboot the device after a portal success")
	cmd.Flags().StringVar(&f.portalAddr, "portal-addr", "", "portal listen address (default from WIFIMAN_PORTAL_ADDR or :80)")
	return cmd
}

func runDaemon(parent context.Context, f runFlags) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := newDeps()
	if err != nil {
		return err
	}
	log := deps.Log

	credMod, store, err := openStore(deps)
	if err != nil {
		return err
	}
	stationMod := stationmod.New(deps, stationmod.Options{})
	connector := module.MustPortsOf[stationmod.Ports](stationMod).Connector

	portalMod := portalmod.New(deps, connector, store, portalmod.Options{Addr: f.portalAddr})
	portal := module.MustPortsOf[portalmod.Ports](portalMod).Portal

	provMod, err := provmod.New(deps, provmod.Collaborators{
		Store:     store,
		Connector: connector,
		Portal:    portal,
	}, provmod.Options{Once: f.once, RebootOnSuccess: f.reboot})
	if err != nil {
		return err
	}
	orch := module.MustPortsOf[pdom.Port](provMod)

	for _, m := range []module.Module{credMod, stationMod, portalMod, provMod} {
		module.Register(m)
	}

	if mo := mqtt.FromConfig(deps.Cfg); mo.Enabled() {
		n, err := mqtt.New(mo)
		if err != nil {
			return err
		}
		defer n.Close()
		orch.Subscribe(n)
	}

	srvCtx, stopSrv := context.WithCancel(ctx)
	defer stopSrv()
	srvDone := make(chan struct{})
	if so := statusmod.FromConfig(deps.Cfg); so.Enabled {
		srv := phttp.NewServer(so.Addr)
		statusapi.Mount(srv.Router(), so, statusmod.New(deps, modkit.WithPorts(statusmod.Ports{
			Orchestrator: orch,
			Store:        store,
		})))
		go func() {
			defer close(srvDone)
			if err := srv.Run(srvCtx); err != nil {
				log.Error().Err(err).Str("addr", so.Addr).Msg("status api stopped")
			}
		}()
	} else {
		close(srvDone)
	}

	err = orch.Supervise(ctx)
	stopSrv()
	<-srvDone

	if errors.Is(err, context.Canceled) {
		log.Info().Msg("shutting down")
		return nil
	}
	if err == nil {
		snap := orch.State()
		log.Info().Str("state", string(snap.State)).Str("network", snap.Network).Str("ip", snap.IP).Msg("provisioning finished")
	}
	return err
}
