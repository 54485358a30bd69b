package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/launchpad/base/ctx"
	"github.com/x-xyz/launchpad/base/database/mongoclient"
	"github.com/x-xyz/launchpad/base/database/redisclient"
	"github.com/x-xyz/launchpad/base/log"
	"github.com/x-xyz/launchpad/base/metrics"
	bValidator "github.com/x-xyz/launchpad/base/validator"
	"github.com/x-xyz/launchpad/domain"
	"github.com/x-xyz/launchpad/domain/event"
	"github.com/x-xyz/launchpad/domain/keys"
	mmiddleware "github.com/x-xyz/launchpad/middleware"
	"github.com/x-xyz/launchpad/service/cache"
	"github.com/x-xyz/launchpad/service/cache/provider"
	"github.com/x-xyz/launchpad/service/cache/provider/compound"
	"github.com/x-xyz/launchpad/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/launchpad/service/cache/provider/redis"
	"github.com/x-xyz/launchpad/service/lock"
	"github.com/x-xyz/launchpad/service/notify"
	"github.com/x-xyz/launchpad/service/query"
	"github.com/x-xyz/launchpad/service/redis"
	account_delivery "github.com/x-xyz/launchpad/stores/account/delivery/http"
	account_repository "github.com/x-xyz/launchpad/stores/account/repository"
	account_usecase "github.com/x-xyz/launchpad/stores/account/usecase"
	auth_delivery "github.com/x-xyz/launchpad/stores/auth/delivery/http"
	auth_middleware "github.com/x-xyz/launchpad/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/x-xyz/launchpad/stores/auth/usecase"
	collection_delivery "github.com/x-xyz/launchpad/stores/collection/delivery/http"
	collection_repository "github.com/x-xyz/launchpad/stores/collection/repository"
	collection_usecase "github.com/x-xyz/launchpad/stores/collection/usecase"
	custody_delivery "github.com/x-xyz/launchpad/stores/custody/delivery/http"
	custody_repository "github.com/x-xyz/launchpad/stores/custody/repository"
	custody_usecase "github.com/x-xyz/launchpad/stores/custody/usecase"
	drop_delivery "github.com/x-xyz/launchpad/stores/drop/delivery/http"
	drop_repository "github.com/x-xyz/launchpad/stores/drop/repository"
	drop_usecase "github.com/x-xyz/launchpad/stores/drop/usecase"
	event_delivery "github.com/x-xyz/launchpad/stores/event/delivery/http"
	event_repository "github.com/x-xyz/launchpad/stores/event/repository"
	event_usecase "github.com/x-xyz/launchpad/stores/event/usecase"
	hc_delivery "github.com/x-xyz/launchpad/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/launchpad/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/launchpad/stores/healthcheck/usecase"
	listing_delivery "github.com/x-xyz/launchpad/stores/listing/delivery/http"
	listing_repository "github.com/x-xyz/launchpad/stores/listing/repository"
	listing_usecase "github.com/x-xyz/launchpad/stores/listing/usecase"
	payment_delivery "github.com/x-xyz/launchpad/stores/payment/delivery/http"
	payment_repository "github.com/x-xyz/launchpad/stores/payment/repository"
	payment_usecase "github.com/x-xyz/launchpad/stores/payment/usecase"
	sequence_repository "github.com/x-xyz/launchpad/stores/sequence/repository"
	whitelist_repository "github.com/x-xyz/launchpad/stores/whitelist/repository"
	whitelist_usecase "github.com/x-xyz/launchpad/stores/whitelist/usecase"

	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/x-xyz/launchpad/app/api/docs"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path of the yaml config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.SetDebug(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func ensureIndexes(c ctx.Ctx, q query.Mongo) {
	tables := []struct {
		table   domain.Table
		indexes []query.Index
	}{
		{domain.TableAccounts, account_repository.Indexes},
		{domain.TableCollections, collection_repository.Indexes},
		{domain.TableDrops, drop_repository.DropIndexes},
		{domain.TableMintLedger, drop_repository.MintLedgerIndexes},
		{domain.TableWhitelist, whitelist_repository.Indexes},
		{domain.TableTokens, custody_repository.TokenIndexes},
		{domain.TableHoldings, custody_repository.HoldingIndexes},
		{domain.TableTokenSupplies, custody_repository.SupplyIndexes},
		{domain.TableOperatorApproval, custody_repository.ApprovalIndexes},
		{domain.TableBalances, payment_repository.Indexes},
		{domain.TableListings, listing_repository.Indexes},
		{domain.TableEvents, event_repository.Indexes},
	}
	for _, t := range tables {
		if err := q.EnsureIndexes(c, t.table, t.indexes); err != nil {
			c.WithFields(log.Fields{"err": err, "table": t.table}).Panic("q.EnsureIndexes failed")
		}
	}
}

//	@title			Launchpad API
//	@version		1.0
//	@description	Timed NFT drops, whitelists and an escrow marketplace.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	mongoClient := mongoclient.MustConnectMongoClient(mongoclient.Config{
		URI:                viper.GetString("mongo.uri"),
		AuthDBName:         viper.GetString("mongo.authDBName"),
		DBName:             viper.GetString("mongo.dbName"),
		SSL:                viper.GetBool("mongo.enableSSL"),
		SetSafe:            true,
		PoolSizeMultiplier: 2,
	})
	q := query.New(mongoClient, viper.GetBool("mongo.checkIndex"))
	ensureIndexes(context, q)

	// redis is optional for a single instance
	var redisService redis.Service
	if uri := viper.GetString("redis.uri"); uri != "" {
		context.Info("init redis")
		name := viper.GetString("redis.name")
		pool := redisclient.MustConnectRedis(uri, viper.GetString("redis.password"), redisclient.RedisParam{
			PoolMultiplier: viper.GetFloat64("redis.poolMultiplier"),
			Retry:          true,
		})
		redisService = redis.New(name, metrics.New(name), &redis.Pools{
			Src: pool,
		})
	}

	localSizeMB := viper.GetInt("cache.localSizeMB")
	cacheTtl := viper.GetDuration("cache.ttl")
	mmiddleware.SetupCache(redisService, localSizeMB)

	cacheProviders := []provider.Provider{}
	if localSizeMB > 0 {
		cacheProviders = append(cacheProviders, primitive.NewPrimitive("collection", localSizeMB))
	}
	if redisService != nil {
		cacheProviders = append(cacheProviders, redisCache.NewRedis(redisService))
	}
	collectionCache := cache.New(cache.ServiceConfig{
		Ttl:   cacheTtl,
		Pfx:   keys.PfxCollection,
		Cache: compound.NewCompound(cacheProviders),
	})

	lockCfg := lock.Config{
		TTL:  viper.GetDuration("lock.ttl"),
		Wait: viper.GetDuration("lock.wait"),
	}
	var locker domain.Locker
	switch viper.GetString("lock.backend") {
	case "redis":
		if redisService == nil {
			context.Panic("redis lock backend requires redis.uri")
		}
		locker = lock.NewRedis(redisService, lockCfg)
	default:
		locker = lock.NewLocal(lockCfg)
	}

	notifiers := []event.Notifier{notify.NewLog()}
	if botKey := viper.GetString("discord.botKey"); botKey != "" {
		discord, err := notify.NewDiscord(notify.DiscordConfig{
			BotKey:    botKey,
			ChannelId: viper.GetString("discord.channelId"),
			SiteURL:   viper.GetString("discord.siteUrl"),
		})
		if err != nil {
			context.WithField("err", err).Error("notify.NewDiscord failed")
		} else {
			notifiers = append(notifiers, discord)
		}
	}

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisService)
	accountRepo := account_repository.New(q, redisService)
	collectionRepo := collection_repository.NewCollection(q)
	dropRepo := drop_repository.NewDrop(q)
	mintLedgerRepo := drop_repository.NewMintLedger(q)
	whitelistRepo := whitelist_repository.New(q)
	custodyRepo := custody_repository.New(q)
	paymentRepo := payment_repository.New(q)
	listingRepo := listing_repository.New(q)
	eventRepo := event_repository.New(q)
	sequenceRepo := sequence_repository.New(q)

	hc := hc_usecase.New(hcRepo)
	account := account_usecase.New(&account_usecase.AccountUseCaseCfg{
		Repo:         accountRepo,
		SignatureMsg: viper.GetString("auth.signatureMsg"),
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), account)
	eventUC := event_usecase.New(&event_usecase.EventUseCaseCfg{
		Repo:      eventRepo,
		Notifiers: notifiers,
	})
	whitelist := whitelist_usecase.New(whitelistRepo)
	payment := payment_usecase.New(&payment_usecase.PaymentUseCaseCfg{
		Repo: paymentRepo,
		Tx:   q,
	})
	custody := custody_usecase.New(&custody_usecase.CustodyUseCaseCfg{
		Repo:           custodyRepo,
		CollectionRepo: collectionRepo,
		SequenceRepo:   sequenceRepo,
		EventUC:        eventUC,
		Tx:             q,
	})
	collection := collection_usecase.NewCollection(&collection_usecase.CollectionUseCaseCfg{
		CollectionRepo: collectionRepo,
		DropRepo:       dropRepo,
		CustodyRepo:    custodyRepo,
		SequenceRepo:   sequenceRepo,
		EventUC:        eventUC,
		Cache:          collectionCache,
		Tx:             q,
		Locker:         locker,
	})
	drop := drop_usecase.New(&drop_usecase.DropUseCaseCfg{
		Repo:            dropRepo,
		LedgerRepo:      mintLedgerRepo,
		CollectionRepo:  collectionRepo,
		SequenceRepo:    sequenceRepo,
		WhitelistUC:     whitelist,
		CustodyUC:       custody,
		PaymentUC:       payment,
		EventUC:         eventUC,
		Tx:              q,
		Locker:          locker,
		CollectionCache: collectionCache,
	})
	listing := listing_usecase.New(&listing_usecase.ListingUseCaseCfg{
		Repo:           listingRepo,
		CollectionRepo: collectionRepo,
		SequenceRepo:   sequenceRepo,
		CustodyUC:      custody,
		PaymentUC:      payment,
		EventUC:        eventUC,
		Tx:             q,
		Locker:         locker,
		Operator:       domain.Address(viper.GetString("marketplace.operator")),
	})

	adminAddresses := viper.GetStringSlice("admin.addresses")
	authMw := auth_middleware.New(auth, adminAddresses)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	account_delivery.New(e, account)
	payment_delivery.New(e, payment, authMw)
	collection_delivery.New(e, collection, authMw)
	custody_delivery.New(e, custody, collection, authMw)
	drop_delivery.New(e, drop, authMw)
	listing_delivery.New(e, listing, authMw)
	event_delivery.New(e, eventUC, cacheTtl)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
	log.Sync()
}
