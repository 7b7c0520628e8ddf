package migrate

// Registry devuelve el registro completo de migraciones de la aplicación.
// Las entradas 0002 de commerce y operations castellanizan las claves
// foráneas heredadas (client -> cliente, contract -> contrato) y fijan sus
// políticas de borrado: el cliente arrastra en cascada, el contrato se
// desengancha a NULL.
func Registry() []Migration {
	return []Migration{
		coreInicial(),
		crmInicial(),
		commerceInicial(),
		commerceRenombrarClaves(),
		operationsInicial(),
		operationsRenombrarClaves(),
		financeInicial(),
	}
}

func coreInicial() Migration {
	return Migration{
		Module:  "core",
		Ordinal: 1,
		Ops: []Operation{
			CreateModel{
				Table: "tenants",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "name", Type: "text", NotNull: true},
					{Name: "status", Type: "text", NotNull: true},
					{Name: "settings", Type: "jsonb", NotNull: true, Default: "'{}'::jsonb"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateModel{
				Table: "usuarios",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "username", Type: "text", NotNull: true},
					{Name: "email", Type: "text", NotNull: true},
					{Name: "password_hash", Type: "text", NotNull: true},
					{Name: "name", Type: "text", NotNull: true, Default: "''"},
					{Name: "status", Type: "text", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateIndex{Table: "usuarios", Name: "usuarios_username_key", Columns: []string{"username"}, Unique: true},
			CreateIndex{Table: "usuarios", Name: "usuarios_email_key", Columns: []string{"email"}, Unique: true},
			CreateModel{
				Table:      "membresias",
				PrimaryKey: []string{"user_id", "tenant_id"},
				Fields: []Field{
					{Name: "user_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "usuarios", OnDelete: OnDeleteCascade}},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "role", Type: "text", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateModel{
				Table: "refresh_tokens",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "user_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "usuarios", OnDelete: OnDeleteCascade}},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "token_hash", Type: "text", NotNull: true},
					{Name: "expires_at", Type: "timestamptz", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "revoked_at", Type: "timestamptz"},
					{Name: "used_at", Type: "timestamptz"},
					{Name: "replaced_by", Type: "uuid"},
				},
			},
			CreateIndex{Table: "refresh_tokens", Name: "refresh_tokens_token_hash_key", Columns: []string{"token_hash"}, Unique: true},
			CreateIndex{Table: "refresh_tokens", Name: "refresh_tokens_user_idx", Columns: []string{"user_id", "created_at"}},
			CreateModel{
				Table:      "rol_permisos",
				PrimaryKey: []string{"tenant_id", "role"},
				Fields: []Field{
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "role", Type: "text", NotNull: true},
					{Name: "permissions", Type: "jsonb", NotNull: true},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
		},
	}
}

func crmInicial() Migration {
	return Migration{
		Module:    "crm",
		Ordinal:   1,
		DependsOn: []string{"core.0001"},
		Ops: []Operation{
			CreateModel{
				Table: "clientes",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "nombre", Type: "text", NotNull: true},
					{Name: "nombre_folded", Type: "text", NotNull: true},
					{Name: "documento", Type: "text", NotNull: true},
					{Name: "email", Type: "text", NotNull: true, Default: "''"},
					{Name: "telefono", Type: "text", NotNull: true, Default: "''"},
					{Name: "direccion", Type: "text", NotNull: true, Default: "''"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateIndex{Table: "clientes", Name: "clientes_tenant_documento_key", Columns: []string{"tenant_id", "documento"}, Unique: true},
			CreateIndex{Table: "clientes", Name: "clientes_nombre_folded_idx", Columns: []string{"tenant_id", "nombre_folded"}},
			CreateModel{
				Table: "contratos",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "cliente_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "clientes", OnDelete: OnDeleteCascade}},
					{Name: "titulo", Type: "text", NotNull: true},
					{Name: "descripcion", Type: "text", NotNull: true, Default: "''"},
					{Name: "monto", Type: "numeric(14,2)", NotNull: true, Default: "0"},
					{Name: "fecha_inicio", Type: "timestamptz", NotNull: true},
					{Name: "fecha_fin", Type: "timestamptz"},
					{Name: "estado", Type: "text", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateModel{
				Table: "eventos",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "titulo", Type: "text", NotNull: true},
					{Name: "descripcion", Type: "text", NotNull: true, Default: "''"},
					{Name: "lugar", Type: "text", NotNull: true, Default: "''"},
					{Name: "inicio", Type: "timestamptz", NotNull: true},
					{Name: "fin", Type: "timestamptz", NotNull: true},
					{Name: "cliente_id", Type: "uuid", Ref: &Ref{Table: "clientes", OnDelete: OnDeleteSetNull}},
					{Name: "estado", Type: "text", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateIndex{Table: "eventos", Name: "eventos_tenant_inicio_idx", Columns: []string{"tenant_id", "inicio"}},
			CreateModel{
				Table: "activos_digitales",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "cliente_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "clientes", OnDelete: OnDeleteCascade}},
					{Name: "nombre", Type: "text", NotNull: true},
					{Name: "tipo", Type: "text", NotNull: true},
					{Name: "referencia", Type: "text", NotNull: true, Default: "''"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
		},
	}
}

func commerceInicial() Migration {
	return Migration{
		Module:    "commerce",
		Ordinal:   1,
		DependsOn: []string{"crm.0001"},
		Ops: []Operation{
			CreateModel{
				Table: "pedidos",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "numero", Type: "text", NotNull: true},
					{Name: "client_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "clientes", OnDelete: OnDeleteProtect}},
					{Name: "contract_id", Type: "uuid", Ref: &Ref{Table: "contratos", OnDelete: OnDeleteProtect}},
					{Name: "descripcion", Type: "text", NotNull: true},
					{Name: "estado", Type: "text", NotNull: true},
					{Name: "total", Type: "numeric(14,2)", NotNull: true, Default: "0"},
					{Name: "fecha_entrega", Type: "timestamptz"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateIndex{Table: "pedidos", Name: "pedidos_tenant_numero_key", Columns: []string{"tenant_id", "numero"}, Unique: true},
			CreateModel{
				Table:      "pedido_contadores",
				PrimaryKey: []string{"tenant_id"},
				Fields: []Field{
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "valor", Type: "bigint", NotNull: true, Default: "0"},
				},
			},
			CreateModel{
				Table: "productos",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "sku", Type: "text", NotNull: true},
					{Name: "nombre", Type: "text", NotNull: true},
					{Name: "categoria", Type: "text", NotNull: true, Default: "''"},
					{Name: "precio", Type: "numeric(14,2)", NotNull: true, Default: "0"},
					{Name: "costo", Type: "numeric(14,2)", NotNull: true, Default: "0"},
					{Name: "stock", Type: "integer", NotNull: true, Default: "0"},
					{Name: "stock_minimo", Type: "integer", NotNull: true, Default: "0"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateIndex{Table: "productos", Name: "productos_tenant_sku_key", Columns: []string{"tenant_id", "sku"}, Unique: true},
		},
	}
}

func commerceRenombrarClaves() Migration {
	return Migration{
		Module:    "commerce",
		Ordinal:   2,
		DependsOn: []string{"crm.0001"},
		Ops: []Operation{
			RenameField{Table: "pedidos", Old: "client_id", New: "cliente_id"},
			RenameField{Table: "pedidos", Old: "contract_id", New: "contrato_id"},
			AlterField{Table: "pedidos", Column: "cliente_id", Ref: &Ref{Table: "clientes", OnDelete: OnDeleteCascade}},
			AlterField{Table: "pedidos", Column: "contrato_id", Ref: &Ref{Table: "contratos", OnDelete: OnDeleteSetNull}, Nullable: true},
		},
	}
}

func operationsInicial() Migration {
	return Migration{
		Module:    "operations",
		Ordinal:   1,
		DependsOn: []string{"commerce.0001"},
		Ops: []Operation{
			CreateModel{
				Table: "ordenes_produccion",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "pedido_id", Type: "uuid", Ref: &Ref{Table: "pedidos", OnDelete: OnDeleteSetNull}},
					{Name: "client_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "clientes", OnDelete: OnDeleteProtect}},
					{Name: "contract_id", Type: "uuid", Ref: &Ref{Table: "contratos", OnDelete: OnDeleteProtect}},
					{Name: "descripcion", Type: "text", NotNull: true},
					{Name: "estado", Type: "text", NotNull: true},
					{Name: "fecha_inicio", Type: "timestamptz", NotNull: true},
					{Name: "fecha_fin", Type: "timestamptz"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateModel{
				Table: "activos_fisicos",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "codigo", Type: "text", NotNull: true},
					{Name: "nombre", Type: "text", NotNull: true},
					{Name: "categoria", Type: "text", NotNull: true, Default: "''"},
					{Name: "estado", Type: "text", NotNull: true},
					{Name: "fecha_compra", Type: "timestamptz", NotNull: true},
					{Name: "valor", Type: "numeric(14,2)", NotNull: true, Default: "0"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateIndex{Table: "activos_fisicos", Name: "activos_fisicos_tenant_codigo_key", Columns: []string{"tenant_id", "codigo"}, Unique: true},
			CreateModel{
				Table: "mantenimientos",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "activo_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "activos_fisicos", OnDelete: OnDeleteCascade}},
					{Name: "tipo", Type: "text", NotNull: true},
					{Name: "descripcion", Type: "text", NotNull: true, Default: "''"},
					{Name: "fecha", Type: "timestamptz", NotNull: true},
					{Name: "costo", Type: "numeric(14,2)", NotNull: true, Default: "0"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateModel{
				Table: "repuestos",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "activo_id", Type: "uuid", Ref: &Ref{Table: "activos_fisicos", OnDelete: OnDeleteSetNull}},
					{Name: "nombre", Type: "text", NotNull: true},
					{Name: "cantidad", Type: "integer", NotNull: true, Default: "0"},
					{Name: "costo_unitario", Type: "numeric(14,2)", NotNull: true, Default: "0"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateModel{
				Table: "financiamientos",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "activo_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "activos_fisicos", OnDelete: OnDeleteCascade}},
					{Name: "entidad", Type: "text", NotNull: true},
					{Name: "monto", Type: "numeric(14,2)", NotNull: true, Default: "0"},
					{Name: "cuotas", Type: "integer", NotNull: true},
					{Name: "tasa_interes", Type: "numeric(6,2)", NotNull: true, Default: "0"},
					{Name: "fecha_inicio", Type: "timestamptz", NotNull: true},
					{Name: "estado", Type: "text", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
		},
	}
}

func operationsRenombrarClaves() Migration {
	return Migration{
		Module:    "operations",
		Ordinal:   2,
		DependsOn: []string{"commerce.0002"},
		Ops: []Operation{
			RenameField{Table: "ordenes_produccion", Old: "client_id", New: "cliente_id"},
			RenameField{Table: "ordenes_produccion", Old: "contract_id", New: "contrato_id"},
			AlterField{Table: "ordenes_produccion", Column: "cliente_id", Ref: &Ref{Table: "clientes", OnDelete: OnDeleteCascade}},
			AlterField{Table: "ordenes_produccion", Column: "contrato_id", Ref: &Ref{Table: "contratos", OnDelete: OnDeleteSetNull}, Nullable: true},
		},
	}
}

func financeInicial() Migration {
	return Migration{
		Module:    "finance",
		Ordinal:   1,
		DependsOn: []string{"core.0001"},
		Ops: []Operation{
			CreateModel{
				Table: "categorias_gasto",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "nombre", Type: "text", NotNull: true},
					{Name: "descripcion", Type: "text", NotNull: true, Default: "''"},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateIndex{Table: "categorias_gasto", Name: "categorias_gasto_tenant_nombre_key", Columns: []string{"tenant_id", "nombre"}, Unique: true},
			CreateModel{
				Table: "gastos_personal",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "categoria_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "categorias_gasto", OnDelete: OnDeleteProtect}},
					{Name: "empleado", Type: "text", NotNull: true},
					{Name: "periodo", Type: "text", NotNull: true},
					{Name: "monto", Type: "numeric(14,2)", NotNull: true},
					{Name: "fecha_pago", Type: "timestamptz", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateIndex{Table: "gastos_personal", Name: "gastos_personal_tenant_periodo_idx", Columns: []string{"tenant_id", "periodo"}},
			CreateModel{
				Table: "gastos_servicio",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "categoria_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "categorias_gasto", OnDelete: OnDeleteProtect}},
					{Name: "servicio", Type: "text", NotNull: true},
					{Name: "proveedor", Type: "text", NotNull: true, Default: "''"},
					{Name: "monto", Type: "numeric(14,2)", NotNull: true},
					{Name: "fecha", Type: "timestamptz", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateModel{
				Table: "presupuestos",
				Fields: []Field{
					{Name: "id", Type: "uuid"},
					{Name: "tenant_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "tenants", OnDelete: OnDeleteCascade}},
					{Name: "categoria_id", Type: "uuid", NotNull: true, Ref: &Ref{Table: "categorias_gasto", OnDelete: OnDeleteCascade}},
					{Name: "periodo", Type: "text", NotNull: true},
					{Name: "monto", Type: "numeric(14,2)", NotNull: true},
					{Name: "created_at", Type: "timestamptz", NotNull: true, Default: "now()"},
					{Name: "updated_at", Type: "timestamptz", NotNull: true, Default: "now()"},
				},
			},
			CreateIndex{Table: "presupuestos", Name: "presupuestos_tenant_categoria_periodo_key", Columns: []string{"tenant_id", "categoria_id", "periodo"}, Unique: true},
		},
	}
}
