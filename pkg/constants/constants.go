package constants

const (
	DEFAULT_PAGE_SIZE = 20  // items per page when the caller omits limit
	MAX_PAGE_SIZE     = 100 // hard cap on items per page, regardless of caller input
	FEATURED_PETS     = 3   // number of pets on the landing page

	MAX_UPLOAD_FILES     = 5               // images per pet submission
	MAX_UPLOAD_FILE_SIZE = 5 * 1024 * 1024 // bytes per image

	CACHE_TTL_MINUTES = 10 // pet detail / featured list cache lifetime
)
