// Package perfrepo maintains the agent_performance snapshot table. The
// snapshot is rebuilt from delivered assignments on a schedule rather than
// maintained incrementally, so a missed run only delays the numbers.
package perfrepo

// AgentPerformanceDTO is one monthly performance snapshot row for an agent.
// Month is formatted as "2006-01" in UTC.
type AgentPerformanceDTO struct {
	AgentID            int64  `gorm:"primaryKey;autoIncrement:false"`
	Month              string `gorm:"primaryKey;type:varchar(7)"`
	Deliveries         int
	AvgDeliveryMinutes float64
	OnTimeRate         float64
}

// TableName specifies the database table name for performance snapshots.
func (AgentPerformanceDTO) TableName() string {
	return "agent_performance"
}
