package highlight

// Style keys emitted by the built-in highlighters. Keys are dotted so a theme
// can style a whole family ("duration") and refine members ("duration.slow").
const (
	StyleTimestampDate     = "timestamp.date"
	StyleTimestampTime     = "timestamp.time"
	StyleTimestampFraction = "timestamp.fraction"
	StyleTimestampZone     = "timestamp.zone"
	StylePID               = "pid"
	StylePIDLine           = "pid.line"
	StyleSession           = "session"

	StyleSeverityPanic   = "severity.panic"
	StyleSeverityFatal   = "severity.fatal"
	StyleSeverityError   = "severity.error"
	StyleSeverityWarning = "severity.warning"
	StyleSeverityNotice  = "severity.notice"
	StyleSeverityInfo    = "severity.info"
	StyleSeverityLog     = "severity.log"
	StyleSeverityDebug   = "severity.debug"
	StyleSeverityDetail  = "severity.detail"

	StyleSQLState       = "sqlstate"
	StyleErrorCondition = "error.condition"
	StyleErrorPosition  = "error.position"
	StyleConstraint     = "constraint"

	StyleDurationFast     = "duration.fast"
	StyleDurationWarning  = "duration.warning"
	StyleDurationSlow     = "duration.slow"
	StyleDurationCritical = "duration.critical"
	StyleSizeNormal       = "size.normal"
	StyleSizeLarge        = "size.large"
	StyleSizeHuge         = "size.huge"
	StyleRows             = "rows"
	StylePercent          = "percent"
	StylePlanCost         = "plan.cost"
	StylePlanTime         = "plan.time"
	StyleBuffers          = "buffers"

	StyleRelation         = "object.relation"
	StyleQuotedIdentifier = "object.quoted"
	StyleQualifiedName    = "object.qualified"
	StyleIndexName        = "object.index"
	StyleOID              = "object.oid"

	StyleLSN      = "wal.lsn"
	StyleSegment  = "wal.segment"
	StyleTimeline = "wal.timeline"
	StyleSlot     = "wal.slot"
	StyleXID      = "wal.xid"

	StyleConnectionEvent = "connection.event"
	StyleConnectionUser  = "connection.user"
	StyleConnectionDB    = "connection.database"
	StyleConnectionKey   = "connection.key"
	StyleConnectionValue = "connection.value"
	StyleHost            = "connection.host"

	StyleSQLKeyword          = "sql.keyword"
	StyleSQLFunction         = "sql.function"
	StyleSQLIdentifier       = "sql.identifier"
	StyleSQLQuotedIdentifier = "sql.quoted_identifier"
	StyleSQLString           = "sql.string"
	StyleSQLNumber           = "sql.number"
	StyleSQLOperator         = "sql.operator"
	StyleSQLComment          = "sql.comment"
	StyleSQLPunctuation      = "sql.punctuation"
	StyleSQLParam            = "sql.param"

	StyleLockWeak   = "lock.weak"
	StyleLockMedium = "lock.medium"
	StyleLockStrong = "lock.strong"
	StyleLockEvent  = "lock.event"
	StyleLockObject = "lock.object"

	StyleCheckpointEvent = "checkpoint.event"
	StyleCheckpointFlag  = "checkpoint.flag"
	StyleCheckpointStat  = "checkpoint.stat"
	StyleVacuum          = "checkpoint.vacuum"

	StyleURL     = "url"
	StylePath    = "path"
	StyleUUID    = "uuid"
	StyleBoolean = "constant.boolean"
	StyleNull    = "constant.null"
	StyleNumber  = "number"
	StyleCustom  = "custom"
)

// StyleKeys returns every style key the built-in highlighters can emit.
func StyleKeys() []string {
	return []string{
		StyleTimestampDate, StyleTimestampTime, StyleTimestampFraction, StyleTimestampZone,
		StylePID, StylePIDLine, StyleSession,
		StyleSeverityPanic, StyleSeverityFatal, StyleSeverityError, StyleSeverityWarning,
		StyleSeverityNotice, StyleSeverityInfo, StyleSeverityLog, StyleSeverityDebug, StyleSeverityDetail,
		StyleSQLState, StyleErrorCondition, StyleErrorPosition, StyleConstraint,
		StyleDurationFast, StyleDurationWarning, StyleDurationSlow, StyleDurationCritical,
		StyleSizeNormal, StyleSizeLarge, StyleSizeHuge,
		StyleRows, StylePercent, StylePlanCost, StylePlanTime, StyleBuffers,
		StyleRelation, StyleQuotedIdentifier, StyleQualifiedName, StyleIndexName, StyleOID,
		StyleLSN, StyleSegment, StyleTimeline, StyleSlot, StyleXID,
		StyleConnectionEvent, StyleConnectionUser, StyleConnectionDB,
		StyleConnectionKey, StyleConnectionValue, StyleHost,
		StyleSQLKeyword, StyleSQLFunction, StyleSQLIdentifier, StyleSQLQuotedIdentifier,
		StyleSQLString, StyleSQLNumber, StyleSQLOperator, StyleSQLComment,
		StyleSQLPunctuation, StyleSQLParam,
		StyleLockWeak, StyleLockMedium, StyleLockStrong, StyleLockEvent, StyleLockObject,
		StyleCheckpointEvent, StyleCheckpointFlag, StyleCheckpointStat, StyleVacuum,
		StyleURL, StylePath, StyleUUID, StyleBoolean, StyleNull, StyleNumber, StyleCustom,
	}
}
