package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/auctionday/auction-api/docs"
	v1 "github.com/auctionday/auction-api/internal/api/handler/v1"
	"github.com/auctionday/auction-api/internal/api/middleware"
	"github.com/auctionday/auction-api/internal/config"
	"github.com/auctionday/auction-api/internal/live"
	"github.com/auctionday/auction-api/internal/repository"
	"github.com/auctionday/auction-api/internal/repository/dao"
	"github.com/auctionday/auction-api/internal/service"
	"github.com/auctionday/auction-api/internal/store"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	hub := live.NewHub()

	tournamentHandler := s.initTournamentHandler(db)
	teamHandler := s.initTeamHandler(db)
	playerHandler := s.initPlayerHandler(db)
	auctionHandler := s.initAuctionHandler(db, hub)
	dashboardHandler := s.initDashboardHandler(db)
	liveHandler := s.initLiveHandler(db, hub)
	s.MountHandlers(tournamentHandler, teamHandler, playerHandler, auctionHandler, dashboardHandler, liveHandler)

	return s
}

func (s *Server) initTournamentHandler(db *gorm.DB) *v1.TournamentHandler {
	tournamentDAO := dao.NewTournamentDAO(db)
	repo := repository.NewTournamentRepository(tournamentDAO)
	svc := service.NewTournamentService(repo)
	handler := v1.NewTournamentHandler(svc)

	return handler
}

func (s *Server) initTeamHandler(db *gorm.DB) *v1.TeamHandler {
	teamDAO := dao.NewTeamDAO(db)
	repo := repository.NewTeamRepository(teamDAO)
	tournamentRepo := repository.NewTournamentRepository(dao.NewTournamentDAO(db))
	svc := service.NewTeamService(repo, tournamentRepo)
	handler := v1.NewTeamHandler(svc)

	return handler
}

func (s *Server) initPlayerHandler(db *gorm.DB) *v1.PlayerHandler {
	playerDAO := dao.NewPlayerDAO(db)
	repo := repository.NewPlayerRepository(playerDAO)
	tournamentRepo := repository.NewTournamentRepository(dao.NewTournamentDAO(db))
	svc := service.NewPlayerService(repo, tournamentRepo)
	handler := v1.NewPlayerHandler(svc)

	return handler
}

func (s *Server) initAuctionHandler(db *gorm.DB, hub *live.Hub) *v1.AuctionHandler {
	svc := s.initAuctionService(db)
	teamPlayers := store.NewTeamPlayerStore(svc, hub)
	handler := v1.NewAuctionHandler(teamPlayers)

	return handler
}

func (s *Server) initDashboardHandler(db *gorm.DB) *v1.DashboardHandler {
	tournamentSvc := service.NewTournamentService(repository.NewTournamentRepository(dao.NewTournamentDAO(db)))
	tournamentRepo := repository.NewTournamentRepository(dao.NewTournamentDAO(db))

	teamSvc := service.NewTeamService(repository.NewTeamRepository(dao.NewTeamDAO(db)), tournamentRepo)
	playerSvc := service.NewPlayerService(repository.NewPlayerRepository(dao.NewPlayerDAO(db)), tournamentRepo)

	handler := v1.NewDashboardHandler(tournamentSvc, teamSvc, playerSvc, s.initAuctionService(db))

	return handler
}

func (s *Server) initLiveHandler(db *gorm.DB, hub *live.Hub) *v1.LiveHandler {
	svc := service.NewTournamentService(repository.NewTournamentRepository(dao.NewTournamentDAO(db)))
	handler := v1.NewLiveHandler(svc, hub)

	return handler
}

func (s *Server) initAuctionService(db *gorm.DB) *service.AuctionService {
	auctionRepo := repository.NewAuctionRepository(dao.NewAuctionDAO(db))
	teamRepo := repository.NewTeamRepository(dao.NewTeamDAO(db))
	playerRepo := repository.NewPlayerRepository(dao.NewPlayerDAO(db))

	return service.NewAuctionService(auctionRepo, teamRepo, playerRepo)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	tournamentHandler *v1.TournamentHandler,
	teamHandler *v1.TeamHandler,
	playerHandler *v1.PlayerHandler,
	auctionHandler *v1.AuctionHandler,
	dashboardHandler *v1.DashboardHandler,
	liveHandler *v1.LiveHandler,
) {
	const basePath = "/api/v1"

	tournaments := s.Router.Group(basePath)
	{
		tournaments.GET("/tournaments", tournamentHandler.HandleListTournaments)
		tournaments.POST("/tournaments", tournamentHandler.HandleCreateTournament)
		tournaments.GET("/tournaments/:tournamentID", tournamentHandler.HandleGetTournament)
		tournaments.PATCH("/tournaments/:tournamentID", tournamentHandler.HandleUpdateTournament)
		tournaments.DELETE("/tournaments/:tournamentID", tournamentHandler.HandleDeleteTournament)
		tournaments.GET("/tournaments/:tournamentID/dashboard", dashboardHandler.HandleGetDashboard)
	}

	teams := s.Router.Group(basePath)
	{
		teams.GET("/teams", teamHandler.HandleListTeams)
		teams.POST("/teams", teamHandler.HandleCreateTeam)
		teams.GET("/teams/:teamID", teamHandler.HandleGetTeam)
		teams.PATCH("/teams/:teamID", teamHandler.HandleUpdateTeam)
		teams.DELETE("/teams/:teamID", teamHandler.HandleDeleteTeam)
	}

	players := s.Router.Group(basePath)
	{
		players.GET("/players", playerHandler.HandleListPlayers)
		players.POST("/players", playerHandler.HandleCreatePlayer)
		players.GET("/players/:playerID", playerHandler.HandleGetPlayer)
		players.PATCH("/players/:playerID", playerHandler.HandleUpdatePlayer)
		players.DELETE("/players/:playerID", playerHandler.HandleDeletePlayer)
	}

	auction := s.Router.Group(basePath)
	{
		auction.GET("/team-players", auctionHandler.HandleListTeamPlayers)
		auction.POST("/auction/sell", auctionHandler.HandleSellPlayer)
		auction.POST("/auction/players/:playerID/unsold", auctionHandler.HandleMarkUnsold)
		auction.GET("/auction/:tournamentID/live", liveHandler.HandleLiveFeed)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Auction API"
	docs.SwaggerInfo.Description = "Tournament and player auction management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
