package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"autocam/internal/config"
	"autocam/internal/engine"
	"autocam/internal/server"
	"autocam/internal/session"
)

func newPreviewCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		fps        int
		qrPath     string
	)

	cmd := &cobra.Command{
		Use:   "preview <session.json>",
		Short: "Serve a live dashboard that plays the camera path back",
		Long: `Computes the schedule for a session and serves a local dashboard that
draws the camera viewport over a schematic of the output canvas,
streaming playback frames over WebSocket.

Endpoints:
  GET /                  Server info
  GET /health            Health check
  GET /api/schedule      Motion list and canvas geometry
  GET /api/viewport?t=   Camera rect at an output time
  GET /dashboard/        Live visual preview
  WS  /ws                Playback frame stream`,
		Example: `  autocam preview demo.json
  autocam preview demo.json --addr :9090 --fps 60
  autocam preview demo.json --qr preview-url.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			sess, err := session.Load(args[0])
			if err != nil {
				return err
			}

			project := engine.New(sess, cfg)
			motions := project.Schedule()
			srv := server.New(addr, project, motions, fps)

			url := fmt.Sprintf("http://localhost%s/dashboard/", addr)
			log.Printf("[*] %d motions scheduled", len(motions))
			log.Printf("[*] Dashboard: %s", url)

			if qrPath != "" {
				if err := qrcode.WriteFile(url, qrcode.Medium, 256, qrPath); err != nil {
					log.Printf("[!] Could not write QR code: %v", err)
				} else {
					log.Printf("[*] Dashboard QR code: %s", qrPath)
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "autocam.yaml", "tuning config file (defaults apply if absent)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().IntVar(&fps, "fps", 30, "playback frame rate")
	cmd.Flags().StringVar(&qrPath, "qr", "", "write a PNG QR code of the dashboard URL to this path")

	return cmd
}
