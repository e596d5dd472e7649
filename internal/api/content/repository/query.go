package contentRepository

const (
	queryGetAllServices = `
		SELECT
			id,
			icon,
			category,
			title,
			description,
			extended_description,
			features,
			visible,
			sort_order,
			updated_at
		FROM services
		ORDER BY sort_order ASC, id ASC
	`

	queryUpsertService = `
		INSERT INTO services (
			id,
			icon,
			category,
			title,
			description,
			extended_description,
			features,
			visible,
			sort_order,
			updated_at
		) VALUES (
			:id,
			:icon,
			:category,
			CAST(:title AS JSONB),
			CAST(:description AS JSONB),
			CAST(:extended_description AS JSONB),
			CAST(:features AS JSONB),
			:visible,
			:sort_order,
			:updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			icon = EXCLUDED.icon,
			category = EXCLUDED.category,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			extended_description = EXCLUDED.extended_description,
			features = EXCLUDED.features,
			visible = EXCLUDED.visible,
			sort_order = EXCLUDED.sort_order,
			updated_at = EXCLUDED.updated_at
	`

	querySetServiceVisibility = `
		UPDATE services
		SET
			visible = :visible,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryGetAllItems = `
		SELECT
			id,
			icon,
			category,
			title,
			benefit,
			visible,
			sort_order,
			updated_at
		FROM configurator_items
		ORDER BY sort_order ASC, id ASC
	`

	queryUpsertItem = `
		INSERT INTO configurator_items (
			id,
			icon,
			category,
			title,
			benefit,
			visible,
			sort_order,
			updated_at
		) VALUES (
			:id,
			:icon,
			:category,
			CAST(:title AS JSONB),
			CAST(:benefit AS JSONB),
			:visible,
			:sort_order,
			:updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			icon = EXCLUDED.icon,
			category = EXCLUDED.category,
			title = EXCLUDED.title,
			benefit = EXCLUDED.benefit,
			visible = EXCLUDED.visible,
			sort_order = EXCLUDED.sort_order,
			updated_at = EXCLUDED.updated_at
	`

	querySetItemVisibility = `
		UPDATE configurator_items
		SET
			visible = :visible,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteItem = `
		DELETE FROM configurator_items
		WHERE id = :id
	`

	queryGetAllSections = `
		SELECT
			id,
			title,
			content,
			sort_order,
			updated_at
		FROM custom_sections
		ORDER BY sort_order ASC, id ASC
	`

	queryUpsertSection = `
		INSERT INTO custom_sections (
			id,
			title,
			content,
			sort_order,
			updated_at
		) VALUES (
			:id,
			CAST(:title AS JSONB),
			CAST(:content AS JSONB),
			:sort_order,
			:updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			sort_order = EXCLUDED.sort_order,
			updated_at = EXCLUDED.updated_at
	`

	queryDeleteAllSections = `
		DELETE FROM custom_sections
	`

	queryDeleteSectionsExcept = `
		DELETE FROM custom_sections
		WHERE id NOT IN (?)
	`

	queryGetBrandConfig = `
		SELECT
			data,
			version,
			updated_at
		FROM brand_config
		WHERE id = :id
	`

	querySaveBrandConfig = `
		INSERT INTO brand_config (
			id,
			data,
			version,
			updated_at
		) VALUES (
			:id,
			CAST(:data AS JSONB),
			1,
			:updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			version = brand_config.version + 1,
			updated_at = EXCLUDED.updated_at
		RETURNING version
	`

	queryGetBotConfig = `
		SELECT
			data,
			updated_at
		FROM bot_config
		WHERE id = :id
	`

	querySaveBotConfig = `
		INSERT INTO bot_config (
			id,
			data,
			updated_at
		) VALUES (
			:id,
			CAST(:data AS JSONB),
			:updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`

	queryGetNotificationSettings = `
		SELECT
			data,
			updated_at
		FROM notification_settings
		WHERE id = :id
	`

	querySaveNotificationSettings = `
		INSERT INTO notification_settings (
			id,
			data,
			updated_at
		) VALUES (
			:id,
			CAST(:data AS JSONB),
			:updated_at
		)
		ON CONFLICT (id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`
)
