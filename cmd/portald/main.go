package main

import (
	"context"
	"flag"
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/psmphuket/portal/cmd/portald/handlers"
	pcf "github.com/psmphuket/portal/pkg/configs/portal"
	kdb "github.com/psmphuket/portal/pkg/db"
	pgorm "github.com/psmphuket/portal/pkg/db/gorm"
	"github.com/psmphuket/portal/pkg/generate"
	"github.com/psmphuket/portal/pkg/messaging"
	"github.com/psmphuket/portal/pkg/session"
	"github.com/psmphuket/portal/pkg/utils/echoutil"
	"github.com/psmphuket/portal/pkg/utils/filewatch"
)

func main() {

	configPath := flag.String("config-path", "", "server config path")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()

	// optional; credentials may come from a .env during development
	_ = godotenv.Load()

	e := echo.New()
	e.Pre(middleware.AddTrailingSlash())

	// set log
	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, ctx echo.Context) {
		e.DefaultHTTPErrorHandler(err, ctx)
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	conf, err := pcf.Load(*configPath)
	if err != nil {
		log.Fatalf("can not read configuration: %s", err)
	}

	// the config file is the source of truth; quit to restart on change
	watchCtx, cancelWatch, err := filewatch.UntilModifyContext(context.Background(), *configPath)
	if err != nil {
		log.Fatalf("can not watch configuration: %s", err)
	}
	defer cancelWatch()
	context.AfterFunc(watchCtx, func() {
		log.Println("config file is updated. quit to restart server.")
		graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := e.Shutdown(graceful); err != nil {
			log.Printf("error on shutdown by config update: %s", err)
		}
	})

	api, err := root("/api")
	if err != nil {
		log.Fatalf("api root /api is invalid url or path: %s", err)
	}

	ctx := context.Background()
	db, err := pgorm.New(ctx, conf.Database.URI)
	if err != nil {
		log.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	if conf.Credentials.JWTSecret == "" {
		log.Fatal("PORTAL_JWT_SECRET is not set")
	}
	issuer := session.NewIssuer(conf.Credentials.JWTSecret, 24*time.Hour)
	e.Use(session.Resolve(issuer))

	gen, err := generate.NewGemini(
		ctx,
		conf.Credentials.GenAIAPIKey,
		conf.Generation.TextModel,
		conf.Generation.ImageModel,
		conf.Generation.Timeout(),
	)
	if err != nil {
		log.Fatalf("can not set up content generation: %s", err)
	}

	var messenger messaging.Messenger
	messenger, err = messaging.NewTwilio(
		conf.Credentials.TwilioAccountSID,
		conf.Credentials.TwilioAuthToken,
		conf.Credentials.TwilioWhatsAppNum,
	)
	if err != nil {
		log.Printf("whatsapp notify is disabled: %s", err)
		messenger = messaging.Disabled{}
	}

	staff := session.Require(kdb.RoleAgent)
	admin := session.Require(kdb.RoleAdmin)

	// handlers
	e.POST(api("login"), handlers.LoginHandler(db.Users(), issuer))

	{
		e.GET(api("blog"), handlers.FindBlogHandler(db.Blog()))
		e.POST(api("blog"), handlers.BlogRegisterHandler(db.Blog()), staff)
		e.GET(api("blog/:slug/"), handlers.GetBlogHandler(db.Blog(), "slug"))
		e.PUT(api("blog/:id/"), handlers.BlogUpdateHandler(db.Blog(), "id"), staff)
		e.DELETE(api("blog/:id/"), handlers.BlogDeleteHandler(db.Blog(), "id"), staff)
	}

	{
		e.GET(api("properties"), handlers.FindPropertyHandler(db.Properties()))
		e.POST(api("properties"), handlers.PropertyRegisterHandler(db.Properties()), staff)
		e.GET(api("properties/:slug/"), handlers.GetPropertyHandler(db.Properties(), "slug"))
		e.PUT(api("properties/:id/"), handlers.PropertyUpdateHandler(db.Properties(), "id"), staff)
		e.PUT(api("properties/:id/status"), handlers.PropertySetStatusHandler(db.Properties(), "id"), staff)
		e.DELETE(api("properties/:id/"), handlers.PropertyDeleteHandler(db.Properties(), "id"), staff)
	}

	{
		e.GET(api("tasks"), handlers.FindTaskHandler(db.Tasks()), staff)
		e.POST(api("tasks"), handlers.TaskRegisterHandler(db.Tasks()), staff)
		e.POST(api("tasks/bulk-delete"), handlers.TaskBulkDeleteHandler(db.Tasks()), staff)
		e.GET(api("tasks/:id/"), handlers.GetTaskHandler(db.Tasks(), "id"), staff)
		e.PUT(api("tasks/:id/"), handlers.TaskUpdateHandler(db.Tasks(), "id"), staff)
		e.PUT(api("tasks/:id/status"), handlers.TaskSetStatusHandler(db.Tasks(), "id"), staff)
		e.DELETE(api("tasks/:id/"), handlers.TaskDeleteHandler(db.Tasks(), "id"), staff)
	}

	{
		threshold := conf.Pricing.AutoApplyThresholdPercent
		e.GET(api("price-requests"), handlers.FindPriceRequestHandler(db.Pricing()), staff)
		e.POST(
			api("price-requests"),
			handlers.PriceRequestRegisterHandler(db.Pricing(), db.Properties(), threshold),
			session.Require(kdb.RoleAgent, kdb.RoleOwner),
		)
		e.PUT(api("price-requests/:id/approve"), handlers.PriceRequestApproveHandler(db.Pricing(), "id"), admin)
		e.PUT(api("price-requests/:id/reject"), handlers.PriceRequestRejectHandler(db.Pricing(), "id"), admin)
		e.PUT(
			api("price-requests/:id/cancel"),
			handlers.PriceRequestCancelHandler(db.Pricing(), "id"),
			session.Require(kdb.RoleAgent, kdb.RoleOwner),
		)
	}

	{
		e.GET(api("invites"), handlers.FindInviteHandler(db.Invites()), staff)
		e.POST(api("invites"), handlers.InviteRegisterHandler(db.Invites()), staff)
		e.DELETE(api("invites/:id/"), handlers.InviteDeactivateHandler(db.Invites(), "id"), staff)
		e.POST(api("invites/redeem"), handlers.InviteRedeemHandler(db.Invites()))
	}

	{
		e.GET(api("hero-images"), handlers.FindHeroHandler(db.Hero()))
		e.POST(api("hero-images"), handlers.HeroRegisterHandler(db.Hero()), staff)
		e.PUT(api("hero-images/:id/"), handlers.HeroUpdateHandler(db.Hero(), "id"), staff)
		e.DELETE(api("hero-images/:id/"), handlers.HeroDeleteHandler(db.Hero(), "id"), staff)
	}

	{
		e.GET(api("company"), handlers.GetCompanyHandler(db.Company()))
		e.PUT(api("company"), handlers.CompanyUpdateHandler(db.Company()), staff)
	}

	{
		e.GET(api("internal-links"), handlers.FindLinkHandler(db.Links()), staff)
		e.POST(api("internal-links"), handlers.LinkRegisterHandler(db.Links()), staff)
		e.PUT(api("internal-links/:id/"), handlers.LinkUpdateHandler(db.Links(), "id"), staff)
		e.DELETE(api("internal-links/:id/"), handlers.LinkDeleteHandler(db.Links(), "id"), staff)
	}

	{
		e.GET(api("users"), handlers.FindUserHandler(db.Users()), admin)
		e.POST(api("users"), handlers.UserRegisterHandler(db.Users()), admin)
		e.PUT(api("users/:id/"), handlers.UserUpdateHandler(db.Users(), "id"), admin)
		e.DELETE(api("users/:id/"), handlers.UserDeleteHandler(db.Users(), "id"), admin)
	}

	{
		e.POST(api("generate-blog/outline"), handlers.GenerateOutlineHandler(gen), staff)
		e.POST(api("generate-blog/content"), handlers.GenerateContentHandler(gen, db.Links()), staff)
		e.POST(api("generate-blog/save"), handlers.GenerateSaveHandler(db.Blog()), staff)
		e.POST(api("smart-blog/topics"), handlers.SmartTopicsHandler(gen), staff)
		e.POST(api("smart-blog/image"), handlers.SmartImageHandler(gen), staff)
		e.GET(api("smart-blog/links"), handlers.SmartLinksHandler(db.Links()), staff)
	}

	e.POST(api("notify/whatsapp"), handlers.NotifyWhatsAppHandler(messenger), staff)

	log.Println("registred routes:")
	for _, r := range e.Routes() {
		log.Println(r.Method, r.Path)
	}

	cert, key := *pcert, *pkey
	if cert != "" && key != "" {
		e.Logger.Fatal(e.StartTLS(":"+conf.ServerPort, cert, key))
	} else {
		e.Logger.Fatal(e.Start(":" + conf.ServerPort))
	}
}

// root builds route paths under the prefix, trailing-slash normalized.
func root(prefix string) (func(...string) string, error) {
	r, err := url.Parse(prefix)
	if err != nil {
		return nil, err
	}

	return func(elem ...string) string {
		suffix := ""
		if last := elem[len(elem)-1]; strings.HasSuffix(last, "/") {
			suffix = "/"
		}
		return path.Join(append([]string{r.Path}, elem...)...) + suffix
	}, nil
}
