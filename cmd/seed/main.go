// Package main seeds the database with base reference data and optional
// demo transactions.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-finance/backend/config"
	"github.com/household-finance/backend/internal/domain/entity"
	"github.com/household-finance/backend/internal/infra/db"
	"github.com/household-finance/backend/internal/integration/persistence"
	"github.com/household-finance/backend/internal/integration/persistence/model"
)

type seedCategory struct {
	name         string
	categoryType entity.CategoryType
}

var baseCategories = []seedCategory{
	// Entradas
	{"Salário", entity.CategoryTypeIncome},
	{"Freelance/Projetos", entity.CategoryTypeIncome},
	{"Investimentos - Dividendos", entity.CategoryTypeIncome},
	{"Investimentos - Resgate", entity.CategoryTypeIncome},
	{"Presentes", entity.CategoryTypeIncome},
	{"Vendas", entity.CategoryTypeIncome},
	{"Reembolsos", entity.CategoryTypeIncome},
	{"Bônus/PLR", entity.CategoryTypeIncome},
	{"Restituição de Imposto", entity.CategoryTypeIncome},
	{"Outros", entity.CategoryTypeIncome},
	// Despesas
	{"Aluguel", entity.CategoryTypeExpense},
	{"Condomínio", entity.CategoryTypeExpense},
	{"Energia Elétrica", entity.CategoryTypeExpense},
	{"Água/Saneamento", entity.CategoryTypeExpense},
	{"Internet/Celular", entity.CategoryTypeExpense},
	{"Gás", entity.CategoryTypeExpense},
	{"Manutenção/Reparos Casa", entity.CategoryTypeExpense},
	{"Limpeza/Produtos de Casa", entity.CategoryTypeExpense},
	{"Supermercado", entity.CategoryTypeExpense},
	{"Restaurante", entity.CategoryTypeExpense},
	{"Lanches/Cafés", entity.CategoryTypeExpense},
	{"Delivery", entity.CategoryTypeExpense},
	{"Padaria", entity.CategoryTypeExpense},
	{"Combustível", entity.CategoryTypeExpense},
	{"Transporte Público/App", entity.CategoryTypeExpense},
	{"Estacionamento", entity.CategoryTypeExpense},
	{"Pedágio", entity.CategoryTypeExpense},
	{"Mecânico", entity.CategoryTypeExpense},
	{"Seguro Veicular", entity.CategoryTypeExpense},
	{"IPVA/Licenciamento", entity.CategoryTypeExpense},
	{"Farmácia", entity.CategoryTypeExpense},
	{"Médico/Exames", entity.CategoryTypeExpense},
	{"Plano de Saúde", entity.CategoryTypeExpense},
	{"Dentista", entity.CategoryTypeExpense},
	{"Terapia", entity.CategoryTypeExpense},
	{"Academia/Esportes", entity.CategoryTypeExpense},
	{"Barbearia/Salão", entity.CategoryTypeExpense},
	{"Cosméticos/Higiene", entity.CategoryTypeExpense},
	{"Roupas/Acessórios", entity.CategoryTypeExpense},
	{"Presentes para Outros", entity.CategoryTypeExpense},
	{"Lavanderia", entity.CategoryTypeExpense},
	{"Cursos/Treinamentos", entity.CategoryTypeExpense},
	{"Livros", entity.CategoryTypeExpense},
	{"Papelaria", entity.CategoryTypeExpense},
	{"Faculdade/Escola", entity.CategoryTypeExpense},
	{"Cinema/Shows/Teatro", entity.CategoryTypeExpense},
	{"Viagens/Hospedagem", entity.CategoryTypeExpense},
	{"Hobby", entity.CategoryTypeExpense},
	{"Assinaturas", entity.CategoryTypeExpense},
	{"Pet: Ração", entity.CategoryTypeExpense},
	{"Pet: Acessórios", entity.CategoryTypeExpense},
	{"Pet: Veterinário/Vacinas", entity.CategoryTypeExpense},
	{"Investimentos - Aporte", entity.CategoryTypeExpense},
	{"Tarifas Bancárias", entity.CategoryTypeExpense},
	{"Juros/Empréstimos", entity.CategoryTypeExpense},
	{"Seguro de Vida", entity.CategoryTypeExpense},
	{"Impostos (IPTU/IR)", entity.CategoryTypeExpense},
	{"Doações", entity.CategoryTypeExpense},
	{"Outras Despesas", entity.CategoryTypeExpense},
}

var basePaymentMethods = []string{
	"Dinheiro", "Pix", "Crédito", "Débito", "Transferência", "Saldo Corretora", "Outros",
}

type demoUser struct {
	name  string
	color string
}

var demoUsers = []demoUser{
	{"Gabriel", "#1976d2"},
	{"Klara", "#a30d41"},
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	clearOnly := flag.Bool("clear", false, "delete transactions and users instead of seeding")
	flag.Parse()

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.PaymentMethodModel{},
		&model.AssetModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	if *clearOnly {
		if err := clearData(database.DB()); err != nil {
			slog.Error("Failed to clear database", "error", err)
			os.Exit(1)
		}
		slog.Info("Transactions and users cleared")
		return
	}

	if err := seed(database.DB()); err != nil {
		slog.Error("Seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Seed completed")
}

// clearData removes transactions and users, keeping the category and
// payment method reference data. Transactions go first so nothing dangles.
func clearData(gdb *gorm.DB) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.TransactionModel{},
			&model.UserModel{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// seed inserts the reference data, upserts the demo household and
// regenerates fourteen months of demo history. Everything runs in one
// transaction.
func seed(gdb *gorm.DB) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		categoryIDs := map[string]uuid.UUID{}
		for _, c := range baseCategories {
			var existing model.CategoryModel
			err := tx.Where("name = ?", c.name).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				existing = *model.CategoryFromEntity(entity.NewCategory(c.name, c.categoryType, ""))
				if err := tx.Create(&existing).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
			categoryIDs[c.name] = existing.ID
		}

		methodRepo := persistence.NewPaymentMethodRepository(tx)
		methodIDs := map[string]uuid.UUID{}
		for _, name := range basePaymentMethods {
			method := entity.NewPaymentMethod(name)
			if err := methodRepo.EnsureExists(context.Background(), method); err != nil {
				return err
			}
			methodIDs[name] = method.ID
		}

		userIDs := map[string]uuid.UUID{}
		for _, u := range demoUsers {
			var existing model.UserModel
			err := tx.Where("name = ?", u.name).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				existing = *model.UserFromEntity(entity.NewUser(u.name, u.color))
				if err := tx.Create(&existing).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			} else {
				existing.Color = u.color
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			}
			userIDs[u.name] = existing.ID
		}

		// Demo history replaces any previous transactions.
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.TransactionModel{}).Error; err != nil {
			return err
		}

		for _, d := range demoTransactions() {
			categoryID, ok := categoryIDs[d.category]
			if !ok {
				return fmt.Errorf("unknown demo category %q", d.category)
			}
			methodID, ok := methodIDs[d.method]
			if !ok {
				return fmt.Errorf("unknown demo payment method %q", d.method)
			}

			row := entity.NewTransaction(
				d.description,
				d.amount,
				d.transactionType,
				d.date,
				userIDs[d.user],
				categoryID,
				methodID,
			)
			if err := tx.Create(model.TransactionFromEntity(row)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type demoTransaction struct {
	user            string
	category        string
	method          string
	description     string
	amount          decimal.Decimal
	transactionType entity.TransactionType
	date            time.Time
}

// relativeDate returns the given day of the month monthsAgo months back,
// clamped to the month's length.
func relativeDate(monthsAgo, day int) time.Time {
	now := time.Now().UTC()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	target := firstOfMonth.AddDate(0, -monthsAgo, 0)

	last := time.Date(target.Year(), target.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

func amount(base, spread float64) decimal.Decimal {
	return decimal.NewFromFloat(base + rand.Float64()*spread).Round(2)
}

// demoTransactions generates roughly fourteen months of household
// history: salaries, alternating investment contributions, fixed costs,
// variable spending, two redemptions and the yearly January tax bill.
func demoTransactions() []demoTransaction {
	var out []demoTransaction
	const monthsToSeed = 14

	for i := 0; i <= monthsToSeed; i++ {
		out = append(out,
			demoTransaction{"Gabriel", "Salário", "Pix", "Salário Mensal", decimal.NewFromFloat(5200), entity.TransactionTypeIncome, relativeDate(i, 28)},
			demoTransaction{"Klara", "Salário", "Pix", "Salário Mensal", decimal.NewFromFloat(4700), entity.TransactionTypeIncome, relativeDate(i, 28)},
		)

		if i%2 == 0 {
			out = append(out, demoTransaction{"Gabriel", "Investimentos - Aporte", "Transferência", "Aporte Mensal Bolsa", decimal.NewFromFloat(1000), entity.TransactionTypeExpense, relativeDate(i, 5)})
		} else {
			out = append(out, demoTransaction{"Klara", "Investimentos - Aporte", "Transferência", "Aporte Tesouro", decimal.NewFromFloat(800), entity.TransactionTypeExpense, relativeDate(i, 5)})
		}

		out = append(out,
			demoTransaction{"Gabriel", "Aluguel", "Transferência", "Aluguel Apartamento", decimal.NewFromFloat(1250), entity.TransactionTypeExpense, relativeDate(i, 11)},
			demoTransaction{"Klara", "Condomínio", "Transferência", "Condomínio", decimal.NewFromFloat(480), entity.TransactionTypeExpense, relativeDate(i, 11)},
			demoTransaction{"Gabriel", "Energia Elétrica", "Pix", "Conta de Luz", amount(170, 50), entity.TransactionTypeExpense, relativeDate(i, 3)},
			demoTransaction{"Klara", "Internet/Celular", "Pix", "Plano Duo", decimal.NewFromFloat(110), entity.TransactionTypeExpense, relativeDate(i, 10)},
			demoTransaction{"Gabriel", "Supermercado", "Crédito", "Compras do Mês", amount(600, 300), entity.TransactionTypeExpense, relativeDate(i, 7)},
			demoTransaction{"Klara", "Farmácia", "Débito", "Itens de Higiene", amount(40, 80), entity.TransactionTypeExpense, relativeDate(i, 15)},
			demoTransaction{"Gabriel", "Transporte Público/App", "Crédito", "Uber Semana", amount(25, 60), entity.TransactionTypeExpense, relativeDate(i, 18)},
			demoTransaction{"Gabriel", "Restaurante", "Crédito", "Jantar Final de Semana", amount(80, 100), entity.TransactionTypeExpense, relativeDate(i, 22)},
		)

		if i == 0 {
			out = append(out, demoTransaction{"Gabriel", "Investimentos - Resgate", "Saldo Corretora", "Resgate para Viagem", decimal.NewFromFloat(3500), entity.TransactionTypeIncome, relativeDate(i, 20)})
		}
		if i == 6 {
			out = append(out, demoTransaction{"Klara", "Investimentos - Resgate", "Saldo Corretora", "Resgate Reserva Emergência", decimal.NewFromFloat(1500), entity.TransactionTypeIncome, relativeDate(i, 10)})
		}

		if relativeDate(i, 1).Month() == time.January {
			out = append(out, demoTransaction{"Gabriel", "IPVA/Licenciamento", "Pix", "IPVA Anual", decimal.NewFromFloat(2400), entity.TransactionTypeExpense, relativeDate(i, 12)})
		}
	}
	return out
}
