// Package research assembles the optional research bag consumed by the
// competitor detector and the report builder. Nothing here performs
// network I/O: the sources are deterministic reference links, and the
// structured fields are passed through from caller-supplied company info.
package research

import (
	"strings"

	"github.com/sells-group/salesfit/internal/model"
)

// Assemble builds the two-sided research bag for a pairing. Absent
// company fields stay absent; the detector treats them as zero signals.
func Assemble(seller, target model.Company) model.ResearchData {
	return model.ResearchData{
		Seller: companyResearch(seller),
		Target: companyResearch(target),
	}
}

func companyResearch(company model.Company) model.CompanyResearch {
	bag := model.CompanyResearch{
		Company: company.Name,
		Sources: ReferenceLinks(company.Name),
	}

	if company.Industry != "" || company.MarketCap != "" || company.Revenue != "" || company.Employees != "" {
		bag.Financials = &model.Financials{
			Industry:  strings.ToLower(company.Industry),
			MarketCap: company.MarketCap,
			Revenue:   company.Revenue,
			Employees: company.Employees,
		}
	}

	return bag
}
