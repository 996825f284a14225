package main

import (
	"context"
	_ "embed"
	"errors"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tomz197/arena/internal/config"
	"github.com/tomz197/arena/internal/object"
)

const shutdownTimeout = 5 * time.Second

//go:embed index.html
var htmlPage string

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	l, closer, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		log.Fatal("create logger", "err", err)
	}
	defer closer.Close()

	app := newApp(cfg)
	addr := net.JoinHostPort(cfg.WebHost, cfg.WebPort)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		l.Info("starting web server", "addr", "http://"+addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			l.Error("server error", "err", err)
		}
		return
	case <-ctx.Done():
	}

	l.Info("shutting down web server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		l.Error("shutdown error", "err", err)
	}
}

func newApp(cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())

	page := strings.NewReplacer(
		"{{.SSHHost}}", cfg.SSHDisplayHost,
		"{{.SSHPort}}", cfg.SSHPort,
	).Replace(htmlPage)

	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(page)
	})
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Get("/classes", handleClasses)

	return app
}

type weaponInfo struct {
	Name            string  `json:"name"`
	MagazineSize    int     `json:"magazineSize"`
	FireIntervalMs  int64   `json:"fireIntervalMs"`
	ReloadMs        int64   `json:"reloadMs"`
	Damage          int     `json:"damage"`
	ProjectileSpeed float64 `json:"projectileSpeed"`
}

type classInfo struct {
	Name      string     `json:"name"`
	MaxHealth int        `json:"maxHealth"`
	Speed     float64    `json:"speed"`
	Weapon    weaponInfo `json:"weapon"`
}

func newWeaponInfo(spec object.WeaponSpec) weaponInfo {
	return weaponInfo{
		Name:            spec.Name,
		MagazineSize:    spec.MagazineSize,
		FireIntervalMs:  spec.FireInterval.Milliseconds(),
		ReloadMs:        spec.ReloadDuration.Milliseconds(),
		Damage:          spec.Damage,
		ProjectileSpeed: spec.ProjectileSpeed,
	}
}

// handleClasses lists the selectable classes and the weapon rotation.
func handleClasses(c *fiber.Ctx) error {
	classes := make([]classInfo, 0, len(object.Classes()))
	for _, cl := range object.Classes() {
		spec := cl.Spec()
		classes = append(classes, classInfo{
			Name:      spec.Name,
			MaxHealth: spec.MaxHealth,
			Speed:     spec.Speed,
			Weapon:    newWeaponInfo(spec.Weapon.Spec()),
		})
	}

	weapons := make([]weaponInfo, 0, len(object.Archetypes()))
	for _, a := range object.Archetypes() {
		weapons = append(weapons, newWeaponInfo(a.Spec()))
	}

	return c.JSON(fiber.Map{
		"classes": classes,
		"weapons": weapons,
	})
}
