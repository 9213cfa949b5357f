// Package cli implements the interactive menu around the catalog and the
// order registry. It reads and writes on injected streams so sessions can
// be scripted in tests.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/sdk/zctx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/coisinhas/comercio/internal/domain/order"
	"github.com/coisinhas/comercio/internal/domain/product"
)

// Menu drives one interactive session over a loaded catalog and order
// registry. All user-facing text goes to out; diagnostics go to the
// context logger.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	catalog *product.Catalog
	orders  *order.Registry
}

// New creates a menu over the given streams and registries.
func New(in io.Reader, out io.Writer, catalog *product.Catalog, orders *order.Registry) *Menu {
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		catalog: catalog,
		orders:  orders,
	}
}

// Run loops over the main menu until the user picks 0 or input ends.
func (m *Menu) Run(ctx context.Context) error {
	lg := zctx.From(ctx)
	for {
		m.header()
		fmt.Fprintln(m.out, "1 - Listar todos os produtos")
		fmt.Fprintln(m.out, "2 - Procurar e listar um produto")
		fmt.Fprintln(m.out, "3 - Cadastrar novo produto")
		fmt.Fprintln(m.out, "4 - Imprimir dados dos pedidos, por data")
		fmt.Fprintln(m.out, "0 - Sair")
		fmt.Fprint(m.out, "Digite sua opção: ")

		line, ok := m.readLine()
		if !ok {
			return nil
		}
		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Opção inválida.")
			m.pause()
			continue
		}

		switch option {
		case 0:
			return nil
		case 1:
			m.listProducts()
		case 2:
			m.searchProduct()
		case 3:
			m.registerProduct(lg)
		case 4:
			m.ordersByDate()
		default:
			fmt.Fprintln(m.out, "Opção inválida.")
		}
		m.pause()
	}
}

func (m *Menu) header() {
	fmt.Fprintln(m.out, "AEDs II COMÉRCIO DE COISINHAS")
	fmt.Fprintln(m.out, "=============================")
}

// readLine returns the next input line, false on end of input.
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

// pause waits for an enter keypress.
func (m *Menu) pause() {
	fmt.Fprintln(m.out, "Digite enter para continuar...")
	m.readLine()
}

func (m *Menu) listProducts() {
	if m.catalog.Len() == 0 {
		fmt.Fprintln(m.out, "Nenhum produto cadastrado")
		return
	}
	fmt.Fprintln(m.out, "\nPRODUTOS CADASTRADOS:")
	for i, p := range m.catalog.All() {
		fmt.Fprintf(m.out, "%02d - %s\n", i+1, p.DisplayText())
	}
}

func (m *Menu) searchProduct() {
	fmt.Fprintln(m.out, "Digite o nome do produto a ser localizado: ")
	name, ok := m.readLine()
	if !ok {
		return
	}
	found := false
	for i, p := range m.catalog.FindByText(name) {
		fmt.Fprintf(m.out, "%02d - %s\n", i+1, p.DisplayText())
		found = true
	}
	if !found {
		fmt.Fprintln(m.out, "Produto não encontrado")
	}
}

func (m *Menu) registerProduct(lg *zap.Logger) {
	fmt.Fprintln(m.out, "Cadastro de novo produto:")
	fmt.Fprintln(m.out, "1 - Não perecível (padrão)")
	fmt.Fprintln(m.out, "2 - Perecível")
	fmt.Fprint(m.out, "Digite o tipo de produto desejado: ")
	kind, ok := m.readLine()
	if !ok {
		return
	}

	fmt.Fprint(m.out, "\nDescrição do produto: ")
	description, ok := m.readLine()
	if !ok {
		return
	}

	costPrice, ok := m.promptDecimal("Preço de custo: R$ ")
	if !ok {
		return
	}
	profitMargin, ok := m.promptDecimal("Margem de lucro: ")
	if !ok {
		return
	}

	var p product.Product
	if strings.TrimSpace(kind) == "2" {
		fmt.Fprint(m.out, "Data de validade no formato dd/mm/yyyy: ")
		raw, ok := m.readLine()
		if !ok {
			return
		}
		expiry, err := time.Parse(product.DateLayout, strings.TrimSpace(raw))
		if err != nil {
			fmt.Fprintln(m.out, "Data inválida.")
			return
		}
		p = product.NewPerishable(description, costPrice, profitMargin, expiry)
	} else {
		p = product.NewNonPerishable(description, costPrice, profitMargin)
	}

	if !m.catalog.Register(p) {
		fmt.Fprintln(m.out, "Limite de produtos atingido. Produto não cadastrado.")
		lg.Warn("Catalog full, registration rejected",
			zap.String("description", description),
			zap.Int("capacity", m.catalog.Capacity()))
		return
	}
	fmt.Fprintf(m.out, "%s cadastrado com sucesso. Total de %d produtos cadastrados no sistema.\n",
		description, m.catalog.Len())
}

func (m *Menu) promptDecimal(prompt string) (decimal.Decimal, bool) {
	fmt.Fprint(m.out, prompt)
	raw, ok := m.readLine()
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(m.out, "Valor inválido.")
		return decimal.Zero, false
	}
	return d, true
}

func (m *Menu) ordersByDate() {
	fmt.Fprint(m.out, "Digite a data do pedido (dd/mm/yyyy): ")
	raw, ok := m.readLine()
	if !ok {
		return
	}
	date, err := time.Parse(product.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(m.out, "Data inválida.")
		return
	}
	found := false
	for o := range m.orders.FindByDate(date) {
		fmt.Fprintln(m.out, o.DisplayText())
		found = true
	}
	if !found {
		fmt.Fprintln(m.out, "Nenhum pedido encontrado para a data informada.")
	}
}
