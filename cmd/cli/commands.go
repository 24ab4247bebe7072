package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/migration"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/registry"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/marketplace-reports-api/pkg/utils"
)

type runCmd struct {
	shop        string
	marketplace string
	clientID    string
	clientKey   string
	perfKey     string
	perfSecret  string
	startDate   string
	endDate     string
}

// newRunCmd executa um job completo em primeiro plano, sem passar pela fila
func newRunCmd() *cobra.Command {
	rc := &runCmd{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Gera e publica os relatórios de uma loja",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.shop, "shop", "", "Nome da loja cadastrada")
	cmd.Flags().StringVar(&rc.marketplace, "marketplace", "", "Marketplace (ozon ou wb) quando as credenciais são informadas direto")
	cmd.Flags().StringVar(&rc.clientID, "client-id", "", "Client ID da Seller API")
	cmd.Flags().StringVar(&rc.clientKey, "client-key", "", "Chave da Seller API ou token do WB")
	cmd.Flags().StringVar(&rc.perfKey, "perf-key", "", "Client ID da API de anúncios")
	cmd.Flags().StringVar(&rc.perfSecret, "perf-secret", "", "Segredo da API de anúncios")
	cmd.Flags().StringVar(&rc.startDate, "start", "", "Data inicial (YYYY-MM-DD ou RFC 3339)")
	cmd.Flags().StringVar(&rc.endDate, "end", "", "Data final (YYYY-MM-DD ou RFC 3339)")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	cmd.MarkFlagsMutuallyExclusive("shop", "marketplace")
	cmd.MarkFlagsOneRequired("shop", "marketplace")

	return cmd
}

func (rc *runCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	window, err := rc.window()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	publisher, err := newPublisher(ctx, cfg)
	if err != nil {
		return err
	}

	var shopRepo repository.ShopRepository
	if rc.shop != "" {
		conn, err := openDatabase(ctx, cfg)
		if err != nil {
			return err
		}
		defer conn.Close()
		shopRepo = repository.NewShopRepository(conn)
	}

	service := reporting.NewService(shopRepo, integrator.NewFactory(cfg), publisher, nil)

	var job *reporting.Job
	if rc.shop != "" {
		job, err = service.PrepareJob(ctx, rc.shop, window)
	} else {
		var marketplace domain.Marketplace
		marketplace, err = domain.ParseMarketplace(rc.marketplace)
		if err != nil {
			return err
		}
		job, err = service.PrepareJobWithCredentials(ctx, domain.Credentials{
			Marketplace:  marketplace,
			ClientID:     rc.clientID,
			ClientSecret: rc.clientKey,
			AdAPIID:      rc.perfKey,
			AdAPISecret:  rc.perfSecret,
		}, window)
	}
	if err != nil {
		return err
	}

	if job.ID, err = utils.GenerateID(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Planilha: %s\n", job.Document.URL())

	service.Run(ctx, job)
	return nil
}

func (rc *runCmd) window() (domain.DateWindow, error) {
	start, err := utils.ParseDate(rc.startDate)
	if err != nil {
		return domain.DateWindow{}, fmt.Errorf("--start: %w", err)
	}
	end, err := utils.ParseDate(rc.endDate)
	if err != nil {
		return domain.DateWindow{}, fmt.Errorf("--end: %w", err)
	}
	return domain.NewDateWindow(start, end)
}

type removeColumnsCmd struct {
	spreadsheet string
	sheet       string
	start       int
	end         int
}

func newRemoveColumnsCmd() *cobra.Command {
	rc := &removeColumnsCmd{}
	cmd := &cobra.Command{
		Use:   "remove-columns",
		Short: "Remove uma faixa de colunas de uma aba já publicada",
		Long:  "Remove as colunas de --start até --end (1-based, inclusivo). --end 0 vai até a última coluna.",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.spreadsheet, "spreadsheet", "", "URL ou ID da planilha")
	cmd.Flags().StringVar(&rc.sheet, "sheet", "", "Nome da aba")
	cmd.Flags().IntVar(&rc.start, "start", 1, "Primeira coluna a remover")
	cmd.Flags().IntVar(&rc.end, "end", 0, "Última coluna a remover")

	_ = cmd.MarkFlagRequired("spreadsheet")
	_ = cmd.MarkFlagRequired("sheet")

	return cmd
}

func (rc *removeColumnsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	publisher, err := newPublisher(ctx, cfg)
	if err != nil {
		return err
	}

	document, err := publisher.OpenDocument(ctx, rc.spreadsheet, domain.DateWindow{})
	if err != nil {
		return err
	}

	if err := document.RemoveColumns(ctx, rc.sheet, rc.start, rc.end); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Colunas removidas de %q\n", rc.sheet)
	return nil
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [senha]",
		Short: "Gera o hash bcrypt para ADMIN_PASSWORD_HASH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := ""
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("erro ao ler a senha: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			if password == "" {
				return fmt.Errorf("senha vazia")
			}

			hash, err := authenticating.HashPassword(password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Cria as tabelas do cadastro de lojas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			conn, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := migration.Migrate(ctx, conn); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Schema aplicado")
			return nil
		},
	}
}

func newShopsCmd() *cobra.Command {
	shops := &cobra.Command{
		Use:   "shops",
		Short: "Consulta o cadastro de lojas",
	}

	shops.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lista as lojas com as credenciais mascaradas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listShops(cmd.Context(), cmd)
		},
	})

	return shops
}

func listShops(ctx context.Context, cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conn, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	shops, err := registry.NewService(repository.NewShopRepository(conn)).ListShops(ctx)
	if err != nil {
		return err
	}

	if len(shops) == 0 {
		fmt.Fprintln(os.Stderr, "Nenhuma loja cadastrada")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(shops))
	return nil
}
