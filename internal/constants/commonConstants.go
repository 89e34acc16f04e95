package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSchedule      CachePrefix = "SCHED_"
	CachePrefixAirport       CachePrefix = "AIRPORT_"
	CachePrefixWeather       CachePrefix = "WX_"
	CachePrefixAircraftImage CachePrefix = "ACIMG_"
	CachePrefixRecentSearch  CachePrefix = "RECENT_"
)
