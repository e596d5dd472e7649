package leadRepository

const (
	queryCreateLead = `
		INSERT INTO leads (
			id,
			request_id,
			full_name,
			email,
			phone,
			company,
			service_interest,
			message,
			address,
			city,
			created_at
		) VALUES (
			:id,
			:request_id,
			:full_name,
			:email,
			:phone,
			:company,
			:service_interest,
			:message,
			:address,
			:city,
			:created_at
		)
		ON CONFLICT (request_id) DO NOTHING
	`

	queryGetLeadIDByRequestID = `
		SELECT id
		FROM leads
		WHERE request_id = :request_id
	`

	queryListLeads = `
		SELECT
			id,
			request_id,
			full_name,
			email,
			phone,
			company,
			service_interest,
			message,
			address,
			city,
			created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountLeads = `
		SELECT COUNT(*)
		FROM leads
	`

	queryCreateConfiguratorLead = `
		INSERT INTO configurator_leads (
			id,
			request_id,
			full_name,
			company,
			email,
			phone,
			address,
			city,
			selected_items,
			created_at
		) VALUES (
			:id,
			:request_id,
			:full_name,
			:company,
			:email,
			:phone,
			:address,
			:city,
			CAST(:selected_items AS JSONB),
			:created_at
		)
		ON CONFLICT (request_id) DO NOTHING
	`

	queryGetConfiguratorLeadIDByRequestID = `
		SELECT id
		FROM configurator_leads
		WHERE request_id = :request_id
	`

	queryListConfiguratorLeads = `
		SELECT
			id,
			request_id,
			full_name,
			company,
			email,
			phone,
			address,
			city,
			selected_items,
			created_at
		FROM configurator_leads
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountConfiguratorLeads = `
		SELECT COUNT(*)
		FROM configurator_leads
	`
)
