package main

import (
	"time"

	v1 "hostpanel/api/v1"
	"hostpanel/internal/auth"
	"hostpanel/internal/cache"
	"hostpanel/internal/catalog"
	"hostpanel/internal/config"
	"hostpanel/internal/datapacket"
	"hostpanel/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	gdb, err := db.InitMySQL(cfg.MySQL.DSN)
	if err != nil {
		logrus.Fatalf("failed to initialize MySQL: %v", err)
	}
	defer db.Close(gdb)

	if cfg.Migrate {
		if err := db.Migrate(gdb); err != nil {
			logrus.Fatalf("failed to migrate database: %v", err)
		}
	}

	auth.InitJWT(cfg.JWT.Secret)

	// The sync lease is best-effort: without Redis, overlapping sync runs
	// fall back to last-write-wins.
	var lock catalog.Locker
	rdb, err := cache.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logrus.Warnf("redis unavailable, sync runs will not be serialized: %v", err)
	} else {
		defer rdb.Close()
		lock = cache.NewSyncLock(rdb, time.Duration(cfg.Sync.LockTTLSec)*time.Second)
	}

	provider := datapacket.NewClient(
		cfg.Datapacket.APIURL,
		cfg.Datapacket.APIKey,
		time.Duration(cfg.Datapacket.TimeoutSec)*time.Second,
	)
	svc := catalog.NewService(gdb, provider, lock, logrus.NewEntry(logrus.StandardLogger()))

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	v1.SetupRouter(r, gdb, cfg, svc)

	logrus.Infof("server starting on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
