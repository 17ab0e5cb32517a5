package domain

import "time"

// AgentDashboard agrega os indicadores exibidos no painel do vendedor
type AgentDashboard struct {
	TotalSales     int          `json:"total_sales"`
	MonthlySales   int          `json:"monthly_sales"`
	MonthlyRevenue float64      `json:"monthly_revenue"`
	TotalVisits    int          `json:"total_visits"`
	MonthlyVisits  int          `json:"monthly_visits"`
	ConversionRate float64      `json:"conversion_rate"` // percentual, 1 casa decimal
	RecentVisits   []*Visit     `json:"recent_visits"`
	RecentSales    []*Sale      `json:"recent_sales"`
	FollowUps      []*Visit     `json:"follow_ups"`
	Target         *SalesTarget `json:"target"` // nil quando não há meta para o mês
}

// AdminDashboard agrega os indicadores da organização inteira
type AdminDashboard struct {
	TotalSales        int                  `json:"total_sales"`
	MonthlySales      int                  `json:"monthly_sales"`
	TotalRevenue      float64              `json:"total_revenue"`
	MonthlyRevenue    float64              `json:"monthly_revenue"`
	TotalVisits       int                  `json:"total_visits"`
	MonthlyVisits     int                  `json:"monthly_visits"`
	OverallConversion float64              `json:"overall_conversion"`
	StatusBreakdown   []StatusCount        `json:"status_breakdown"`
	OutcomeBreakdown  []OutcomeCount       `json:"outcome_breakdown"`
	TopPerformers     []PerformerStat      `json:"top_performers"`
	PackageStats      []PackageStat        `json:"package_stats"`
	CommonObjections  ObjectionCounts      `json:"common_objections"`
	DailyActivity     []DailyActivityEntry `json:"daily_activity"`
}

// PerformerStat é uma linha do ranking mensal de vendedores
type PerformerStat struct {
	UserID         int     `json:"user_id"`
	Name           string  `json:"name"`
	Lastname       string  `json:"lastname"`
	SalesCount     int     `json:"sales_count"`
	Revenue        float64 `json:"revenue"`
	VisitsCount    int     `json:"visits_count"`
	ConversionRate float64 `json:"conversion_rate"`
}

// TeamMemberStat é uma linha da tabela de desempenho da equipe; além dos
// números do mês traz os totais históricos e inclui vendedores sem atividade
type TeamMemberStat struct {
	UserID         int     `json:"user_id"`
	Name           string  `json:"name"`
	Lastname       string  `json:"lastname"`
	Email          string  `json:"email"`
	TotalSales     int     `json:"total_sales"`
	MonthlySales   int     `json:"monthly_sales"`
	TotalRevenue   float64 `json:"total_revenue"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	TotalVisits    int     `json:"total_visits"`
	MonthlyVisits  int     `json:"monthly_visits"`
	ConversionRate float64 `json:"conversion_rate"`
}

// DailyActivityEntry é um ponto da série diária de atividade. A série
// cobre exatamente os últimos 30 dias (hoje incluso), sem lacunas.
type DailyActivityEntry struct {
	Date   time.Time `json:"date"`
	Sales  int       `json:"sales"`
	Visits int       `json:"visits"`
}

type StatusCount struct {
	Status SaleStatus `json:"status"`
	Count  int        `json:"count"`
}

type OutcomeCount struct {
	Outcome VisitOutcome `json:"outcome"`
	Count   int          `json:"count"`
}

// PackageStat agrega vendas por pacote (contagem e receita, todo o período)
type PackageStat struct {
	PackageName string  `json:"package_name"`
	Count       int     `json:"count"`
	Revenue     float64 `json:"revenue"`
}

// ObjectionCounts conta as objeções sinalizadas nas visitas do mês
type ObjectionCounts struct {
	Price            int `json:"price"`
	Coverage         int `json:"coverage"`
	ExistingProvider int `json:"existing_provider"`
}

// ProviderMention conta menções a um concorrente nomeado nas visitas do mês
type ProviderMention struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FeedbackAnalysis agrega a análise de feedback e objeções do mês corrente
type FeedbackAnalysis struct {
	VisitsWithFeedback []*Visit          `json:"visits_with_feedback"`
	Objections         ObjectionCounts   `json:"objections"`
	ExistingProviders  []ProviderMention `json:"existing_providers"`
}
