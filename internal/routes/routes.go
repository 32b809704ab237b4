package routes

const (
	// Health (unauthenticated, registered on the root router)
	Health = "/health"

	// Everything below is relative to the authenticated /api/v1 subrouter.

	// Account
	AccountRole = "/account/role"

	// Properties
	Properties          = "/properties"
	PropertiesAvailable = "/properties/available"
	PropertiesJoined    = "/properties/joined"
	Property            = "/properties/{propertyId}"
	PropertyLeave       = "/properties/{propertyId}/leave"
	PropertyTenant      = "/properties/{propertyId}/tenants/{email}"

	// Join requests
	PropertyJoinRequests = "/properties/{propertyId}/join-requests"
	JoinRequests         = "/join-requests"
	JoinRequestAccept    = "/properties/{propertyId}/join-requests/{requestId}/accept"
	JoinRequestReject    = "/properties/{propertyId}/join-requests/{requestId}/reject"

	// Maintenance
	PropertyMaintenance = "/properties/{propertyId}/maintenance"
	Maintenance         = "/maintenance"
	MaintenanceMine     = "/maintenance/mine"
	MaintenanceRequest  = "/properties/{propertyId}/maintenance/{requestId}"

	// Suggestions
	Suggestions     = "/suggestions"
	SuggestionsMine = "/suggestions/mine"
	Suggestion      = "/suggestions/{suggestionId}"

	// Notifications
	Notifications            = "/notifications"
	NotificationCategoryView = "/notifications/{category}/view"
	NotificationOutcomes     = "/notifications/outcomes"
	NotificationOutcome      = "/notifications/outcomes/{notificationId}"
)

// APIPrefix is the mount point of the authenticated subrouter.
const APIPrefix = "/api/v1"
